package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entities with a display code, and their prefixes.
const (
	EntidadCliente  = "cliente"
	EntidadProducto = "producto"
	EntidadVenta    = "venta"
	EntidadPago     = "pago"
)

var prefijos = map[string]string{
	EntidadCliente:  "C",
	EntidadProducto: "P",
	EntidadVenta:    "V",
	EntidadPago:     "PG",
}

// SecuenciaRepository hands out the per-owner display codes (V-0001, PG-0012...).
// Codes are opaque: the counter lives in the caller's tx, deleted rows leave gaps.
type SecuenciaRepository interface {
	NextCodigo(ctx context.Context, tx *gorm.DB, usuarioID uuid.UUID, entidad string) (string, error)
}

type secuenciaRepo struct{ db *gorm.DB }

func NewSecuenciaRepository(db *gorm.DB) SecuenciaRepository { return &secuenciaRepo{db: db} }

func (r *secuenciaRepo) NextCodigo(ctx context.Context, tx *gorm.DB, usuarioID uuid.UUID, entidad string) (string, error) {
	prefijo, ok := prefijos[entidad]
	if !ok {
		return "", fmt.Errorf("entidad sin secuencia: %q", entidad)
	}
	q := conn(ctx, r.db, tx)

	var s model.Secuencia
	err := q.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("usuario_id = ? AND entidad = ?", usuarioID, entidad).
		First(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s = model.Secuencia{UsuarioID: usuarioID, Entidad: entidad, Valor: 1}
		if err := q.Create(&s).Error; err != nil {
			return "", translate(err)
		}
	case err != nil:
		return "", translate(err)
	default:
		s.Valor++
		err := q.Model(&model.Secuencia{}).
			Where("usuario_id = ? AND entidad = ?", usuarioID, entidad).
			Update("valor", gorm.Expr("valor + 1")).Error
		if err != nil {
			return "", translate(err)
		}
	}
	return fmt.Sprintf("%s-%04d", prefijo, s.Valor), nil
}
