package usecases

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders minor units with the currency's standard scale, e.g. "1,500.00 USD".
func formatMoney(minor int64, code string) string {
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}
	value := float64(minor) / math.Pow10(scale)
	return moneyPrinter.Sprintf("%v %s", number.Decimal(value, number.Scale(scale)), code)
}
