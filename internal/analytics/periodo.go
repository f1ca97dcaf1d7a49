package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"

	"github.com/shopspring/decimal"
)

// Periodo selects the bucket size of AgruparPorPeriodo.
type Periodo string

const (
	PeriodoDia  Periodo = "dia"
	PeriodoMes  Periodo = "mes"
	PeriodoAnio Periodo = "anio"
)

func (p Periodo) layout() (string, error) {
	switch p {
	case PeriodoDia:
		return "2006-01-02", nil
	case PeriodoMes:
		return "2006-01", nil
	case PeriodoAnio:
		return "2006", nil
	}
	return "", fmt.Errorf("periodo desconocido: %q", string(p))
}

// AgruparPorPeriodo buckets the per-sale projection by day, month or year and
// stacks the amounts by category. Buckets are sorted by key ascending.
func AgruparPorPeriodo(filas []dto.VentaPorPeriodo, p Periodo) ([]dto.PeriodoAgrupado, error) {
	layout, err := p.layout()
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]map[string]decimal.Decimal)
	for _, f := range filas {
		t, err := time.Parse("2006-01-02", f.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida %q: %w", f.Fecha, err)
		}
		key := t.Format(layout)
		cats, ok := buckets[key]
		if !ok {
			cats = make(map[string]decimal.Decimal)
			buckets[key] = cats
		}
		cat := f.Categoria
		if cat == "" {
			cat = SinCategoria
		}
		cats[cat] = cats[cat].Add(f.Monto)
	}

	out := make([]dto.PeriodoAgrupado, 0, len(buckets))
	for key, cats := range buckets {
		out = append(out, dto.PeriodoAgrupado{Periodo: key, Categorias: cats})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Periodo < out[j].Periodo })
	return out, nil
}
