package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var clPrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders an amount the way the storefront displays Chilean pesos,
// e.g. 12500 -> "$12.500". CLP carries no minor units, so the amount is
// rounded to the nearest peso first.
func FormatCLP(amount decimal.Decimal) string {
	pesos := amount.Round(0).IntPart()
	return "$" + clPrinter.Sprint(number.Decimal(pesos))
}
