package repository

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PagoRepository interface {
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Pago, error)
	ListByVenta(ctx context.Context, usuarioID, ventaID uuid.UUID) ([]model.Pago, error)
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Pago, error)

	// Montos returns the amount of every payment of the sale, read through tx.
	Montos(ctx context.Context, tx *gorm.DB, ventaID uuid.UUID) ([]decimal.Decimal, error)

	Create(ctx context.Context, tx *gorm.DB, p *model.Pago) error
	Delete(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) error
	DeleteByVenta(ctx context.Context, tx *gorm.DB, usuarioID, ventaID uuid.UUID) error
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha_pago DESC").
		Order("created_at DESC").
		Find(&pagos).Error
	return pagos, translate(err)
}

func (r *pagoRepo) ListByVenta(ctx context.Context, usuarioID, ventaID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND venta_id = ?", usuarioID, ventaID).
		Order("fecha_pago DESC").
		Order("created_at DESC").
		Find(&pagos).Error
	return pagos, translate(err)
}

func (r *pagoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	if err := r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", id, usuarioID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *pagoRepo) Montos(ctx context.Context, tx *gorm.DB, ventaID uuid.UUID) ([]decimal.Decimal, error) {
	var montos []decimal.Decimal
	err := conn(ctx, r.db, tx).
		Model(&model.Pago{}).
		Where("venta_id = ?", ventaID).
		Pluck("monto", &montos).Error
	return montos, translate(err)
}

func (r *pagoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pago) error {
	return translate(conn(ctx, r.db, tx).Create(p).Error)
}

func (r *pagoRepo) Delete(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) error {
	return deleted(conn(ctx, r.db, tx).Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&model.Pago{}))
}

// DeleteByVenta removes every payment of the sale; zero rows is not an error.
func (r *pagoRepo) DeleteByVenta(ctx context.Context, tx *gorm.DB, usuarioID, ventaID uuid.UUID) error {
	err := conn(ctx, r.db, tx).
		Where("venta_id = ? AND usuario_id = ?", ventaID, usuarioID).
		Delete(&model.Pago{}).Error
	return translate(err)
}
