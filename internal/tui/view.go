package tui

import (
	"strings"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/charmbracelet/lipgloss"
)

const aboutText = "This application converts currency values using live exchange rates " +
	"from an online API. Pick two currencies and enter an amount to see the " +
	"converted value and the exchange rate used."

func (m Model) View() string {
	if m.screen == aboutScreen {
		return m.aboutView()
	}
	return m.mainView()
}

func (m Model) mainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Currency Converter"))
	b.WriteString("\n")
	b.WriteString(m.fieldView("Base Currency", baseField, currencyLabel(m.base)))
	b.WriteString(m.fieldView("Destination Currency", targetField, currencyLabel(m.target)))
	b.WriteString(m.fieldView("Amount", amountField, m.amount.View()))

	switch {
	case m.inFlight:
		b.WriteString("\n" + m.spinner.View() + " Converting...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.result != nil:
		b.WriteString(resultStyle.Render(conversion.ResultLine(m.result.amount, m.result.req, m.result.res)))
		b.WriteString("\n")
		b.WriteString(rateStyle.Render(conversion.RateLine(m.result.req, m.result.res)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

func (m Model) fieldView(label string, f field, value string) string {
	style := fieldStyle
	if m.focus == f {
		style = focusedFieldStyle
		if f != amountField {
			value = "‹ " + value + " ›"
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), style.Render(value)) + "\n"
}

func (m Model) aboutView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("About"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Description:"))
	b.WriteString("\n")
	b.WriteString(textStyle.Render(aboutText))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Supported currencies:"))
	b.WriteString("\n")
	for _, c := range money.Supported() {
		b.WriteString("  " + c.Label() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(aboutKeys{m.keys}))
	return appStyle.Render(b.String())
}

func currencyLabel(code string) string {
	if c, ok := money.Lookup(money.Code(code)); ok {
		return c.Label()
	}
	return code
}
