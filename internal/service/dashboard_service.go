package service

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/analytics"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/google/uuid"
)

type DashboardService interface {
	Resumen(ctx context.Context, usuarioID uuid.UUID, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ventaRepo repository.VentaRepository
}

func NewDashboardService(ventaRepo repository.VentaRepository) DashboardService {
	return &dashboardService{ventaRepo: ventaRepo}
}

// Resumen loads the owner's sales in the range (with product category) and
// aggregates them. With Periodo set, the per-sale rows are also bucketed.
func (s *dashboardService) Resumen(ctx context.Context, usuarioID uuid.UUID, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	if err := validation.Struct(filter); err != nil {
		return nil, err
	}

	ventas, err := s.ventaRepo.List(ctx, usuarioID, dto.VentaFilter{Desde: filter.Desde, Hasta: filter.Hasta})
	if err != nil {
		return nil, err
	}
	filas := make([]analytics.VentaCategorizada, 0, len(ventas))
	for _, v := range ventas {
		filas = append(filas, analytics.DesdeVenta(v))
	}

	res := analytics.Resumir(filas, analytics.Rango{Desde: filter.Desde, Hasta: filter.Hasta})
	if filter.Periodo != "" {
		res.PeriodoAgrupado, err = analytics.AgruparPorPeriodo(res.VentasPorPeriodo, analytics.Periodo(filter.Periodo))
		if err != nil {
			return nil, err
		}
	}
	return &res, nil
}
