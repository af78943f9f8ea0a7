// Package formatting formatea números y montos para la locale es-CO.
// El sistema maneja una sola locale; no hay i18n.
package formatting

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Money formatea un monto en pesos con separadores es-CO y dos decimales.
func Money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Count formatea un entero con separador de miles.
func Count(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}
