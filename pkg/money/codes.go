package money

// Code represents a currency code (e.g., "USD", "CAD").
type Code string

// Common currency codes
const (
	CAD Code = "CAD" // Canadian Dollar
	USD Code = "USD" // US Dollar
	AUD Code = "AUD" // Australian Dollar
	GBP Code = "GBP" // British Pound
)

// IsValid reports whether c is exactly three uppercase ASCII letters.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Currency pairs a code with its display name.
type Currency struct {
	Code Code   `json:"code"`
	Name string `json:"name"`
}

// Label renders the currency the way pickers show it, e.g. "CAD - Canadian Dollar".
func (c Currency) Label() string {
	return string(c.Code) + " - " + c.Name
}

var supported = []Currency{
	{Code: CAD, Name: "Canadian Dollar"},
	{Code: USD, Name: "US Dollar"},
	{Code: AUD, Name: "Australian Dollar"},
	{Code: GBP, Name: "British Pound"},
}

// Supported returns the currencies offered by the presentation layers, in display order.
// Conversion itself accepts any valid code; the list only drives pickers.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the supported currency for code.
func Lookup(code Code) (Currency, bool) {
	for _, c := range supported {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Next returns the supported code after c, wrapping around. Codes outside the
// list start from the first entry. A negative step walks backwards.
func Next(c Code, step int) Code {
	idx := -1
	for i, s := range supported {
		if s.Code == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return supported[0].Code
	}
	n := len(supported)
	return supported[((idx+step)%n+n)%n].Code
}
