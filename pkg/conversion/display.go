package conversion

import (
	"fmt"

	"github.com/amirasaad/fxconvert/pkg/money"
)

// ResultLine renders "<amount> <BASE> = <converted> <TARGET>", echoing the
// amount as the user typed it.
func ResultLine(amount string, req Request, res Result) string {
	return fmt.Sprintf("%s %s = %s %s", amount, req.Base, money.Format(res.ConvertedAmount), req.Target)
}

// RateLine renders "Exchange rate: 1 <BASE> = <rate> <TARGET>".
func RateLine(req Request, res Result) string {
	return fmt.Sprintf("Exchange rate: 1 %s = %s %s", req.Base, money.Format(res.Rate), req.Target)
}
