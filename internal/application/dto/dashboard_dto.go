package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse KPIs derivados del catálogo + ledger. Los campos
// *Display llevan el monto formateado para la locale es-CO.
type DashboardSummaryResponse struct {
	TotalProducts   int             `json:"total_products"`
	LowStockCount   int             `json:"low_stock_count"`
	Valuation       decimal.Decimal `json:"valuation"`
	PotentialMargin decimal.Decimal `json:"potential_margin"`
	GrossSales      decimal.Decimal `json:"gross_sales"`

	ValuationDisplay       string `json:"valuation_display"`
	PotentialMarginDisplay string `json:"potential_margin_display"`
	GrossSalesDisplay      string `json:"gross_sales_display"`

	LowStock []ProductResponse `json:"low_stock"`
}

// SalesHoursResponse analítica de ventas por hora del día para [From, To].
type SalesHoursResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	SalesByHour []int             `json:"sales_by_hour"` // 24 posiciones
	UnitsByHour []decimal.Decimal `json:"units_by_hour"` // 24 posiciones

	TotalSales int             `json:"total_sales"`
	TotalUnits decimal.Decimal `json:"total_units"`

	PeakHour       int             `json:"peak_hour"`
	PeakSalesValue int             `json:"peak_sales_value"`
	PeakUnitsHour  int             `json:"peak_units_hour"`
	PeakUnitsValue decimal.Decimal `json:"peak_units_value"`
}
