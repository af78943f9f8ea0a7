// Package analytics responde "¿a qué hora del día se vende?" sobre una
// ventana de tiempo, tolerando los formatos de fecha heterogéneos del ledger
// histórico.
package analytics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kiosco-stock/internal/domain/entity"
)

// Valores numéricos por debajo de este umbral se interpretan como epoch en
// segundos y se escalan a milisegundos.
const epochMillisThreshold = 1e12

// Layouts aceptados para strings de fecha, del más al menos específico.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// MovementTime extrae la fecha de un movimiento probando los campos candidatos
// en orden (createdAt, datetime, date, timestamp, atISO); el primero que parsea
// gana. Un movimiento sin fecha parseable devuelve ok=false y queda fuera de la
// analítica: política deliberada de parsing tolerante, no un error.
func MovementTime(m *entity.Movement) (time.Time, bool) {
	if m == nil {
		return time.Time{}, false
	}
	for _, raw := range m.DateCandidates() {
		if t, ok := parseRawDate(raw); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseRawDate es la cadena de estrategias: número → epoch; string → primero
// epoch numérico, después layouts de fecha.
func parseRawDate(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return parseEpoch(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseDateString(s)
	}
	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return parseEpoch(n)
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseEpoch(v float64) (time.Time, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, false
	}
	ms := v
	if math.Abs(v) < epochMillisThreshold {
		ms = v * 1000
	}
	return time.UnixMilli(int64(ms)), true
}

// HourlyBuckets agrupa las ventas por hora local del día (0–23).
type HourlyBuckets struct {
	SalesByHour    [24]int               // cantidad de ventas por hora
	UnitsByHour    [24]decimal.Decimal   // unidades vendidas por hora
	TotalSales     int
	TotalUnits     decimal.Decimal
	PeakHour       int                   // hora pico por cantidad de ventas
	PeakSalesValue int
	PeakUnitsHour  int                   // hora pico por unidades
	PeakUnitsValue decimal.Decimal
}

// BuildHourlyBuckets cuenta solo movimientos OUT dentro de [start, end]
// (bordes inclusivos). Cada venta aporta 1 al bucket de ventas y su qty al de
// unidades, indexados por hora local. Los picos se calculan por separado; en
// empate gana la hora menor, y con buckets vacíos el pico es hora 0 valor 0.
func BuildHourlyBuckets(movements []entity.Movement, start, end time.Time) HourlyBuckets {
	b := HourlyBuckets{TotalUnits: decimal.Zero}
	for i := range b.UnitsByHour {
		b.UnitsByHour[i] = decimal.Zero
	}

	for i := range movements {
		m := &movements[i]
		if m.Type != entity.MovementTypeOUT {
			continue
		}
		when, ok := MovementTime(m)
		if !ok {
			continue
		}
		if when.Before(start) || when.After(end) {
			continue
		}

		hour := when.Local().Hour()
		b.SalesByHour[hour]++
		b.UnitsByHour[hour] = b.UnitsByHour[hour].Add(m.Qty)
		b.TotalSales++
		b.TotalUnits = b.TotalUnits.Add(m.Qty)
	}

	b.PeakHour, b.PeakSalesValue = peakSales(b.SalesByHour)
	b.PeakUnitsHour, b.PeakUnitsValue = peakUnits(b.UnitsByHour)
	return b
}

func peakSales(values [24]int) (hour, max int) {
	max = values[0]
	for i, v := range values {
		if v > max {
			hour, max = i, v
		}
	}
	return hour, max
}

func peakUnits(values [24]decimal.Decimal) (int, decimal.Decimal) {
	hour, max := 0, values[0]
	for i, v := range values {
		if v.GreaterThan(max) {
			hour, max = i, v
		}
	}
	return hour, max
}
