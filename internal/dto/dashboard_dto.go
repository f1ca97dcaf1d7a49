package dto

import "github.com/shopspring/decimal"

// DashboardFilter is bound from the query string of GET /v1/dashboard.
type DashboardFilter struct {
	Desde   string `form:"desde"   validate:"omitempty,datetime=2006-01-02"`
	Hasta   string `form:"hasta"   validate:"omitempty,datetime=2006-01-02"`
	Periodo string `form:"periodo" validate:"omitempty,oneof=dia mes anio"`
}

type DashboardKPIs struct {
	TotalVentas    int             `json:"total_ventas"`
	MontoTotal     decimal.Decimal `json:"monto_total"`
	VentasPagadas  int             `json:"ventas_pagadas"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
}

type UltimaVenta struct {
	VentaID       string          `json:"venta_id"`
	ClienteNombre string          `json:"cliente_nombre"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	Fecha         string          `json:"fecha"`
	Estado        string          `json:"estado"`
}

type VentaPorCategoria struct {
	Categoria  string          `json:"categoria"`
	MontoTotal decimal.Decimal `json:"monto_total"`
	Cantidad   int             `json:"cantidad"`
}

type VentaPorPeriodo struct {
	Fecha     string          `json:"fecha"`
	Categoria string          `json:"categoria"`
	Monto     decimal.Decimal `json:"monto"`
}

// PeriodoAgrupado is one chart bucket: the period key plus the amount per category.
type PeriodoAgrupado struct {
	Periodo    string                     `json:"periodo"`
	Categorias map[string]decimal.Decimal `json:"categorias"`
}

type DashboardResponse struct {
	KPIs               DashboardKPIs       `json:"kpis"`
	UltimasVentas      []UltimaVenta       `json:"ultimas_ventas"`
	VentasPorCategoria []VentaPorCategoria `json:"ventas_por_categoria"`
	VentasPorPeriodo   []VentaPorPeriodo   `json:"ventas_por_periodo"`
	PeriodoAgrupado    []PeriodoAgrupado   `json:"periodo_agrupado,omitempty"`
}
