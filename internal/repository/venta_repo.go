package repository

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VentaRepository interface {
	// List returns the owner's sales newest first, with Producto preloaded so
	// the dashboard can read the category.
	List(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, error)
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Venta, error)

	// FindByIDForUpdate locks the sale row until tx ends (no-op on SQLite).
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) (*model.Venta, error)

	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	Update(ctx context.Context, tx *gorm.DB, v *model.Venta) error

	// UpdateSaldo writes only monto_pagado, saldo_pendiente and estado.
	UpdateSaldo(ctx context.Context, tx *gorm.DB, v *model.Venta) error

	Delete(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) List(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, error) {
	var ventas []model.Venta

	q := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID)
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Desde != "" {
		q = q.Where("fecha >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		q = q.Where("fecha <= ?", filter.Hasta)
	}

	err := q.Preload("Producto").
		Order("fecha DESC").
		Order("created_at DESC").
		Find(&ventas).Error
	return ventas, translate(err)
}

func (r *ventaRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *ventaRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := conn(ctx, r.db, tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		First(&v).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return translate(conn(ctx, r.db, tx).Omit(clause.Associations).Create(v).Error)
}

func (r *ventaRepo) Update(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	res := conn(ctx, r.db, tx).
		Model(&model.Venta{}).
		Where("id = ? AND usuario_id = ?", v.ID, v.UsuarioID).
		Select("cliente_id", "cliente_nombre", "producto_id", "producto_nombre", "fecha",
			"tipo_pago", "monto_total", "num_cuotas", "monto_cuota",
			"monto_pagado", "saldo_pendiente", "estado", "updated_at").
		Updates(v)
	return deleted(res)
}

func (r *ventaRepo) UpdateSaldo(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	res := conn(ctx, r.db, tx).
		Model(&model.Venta{}).
		Where("id = ? AND usuario_id = ?", v.ID, v.UsuarioID).
		Select("monto_pagado", "saldo_pendiente", "estado", "updated_at").
		Updates(v)
	return deleted(res)
}

func (r *ventaRepo) Delete(ctx context.Context, tx *gorm.DB, usuarioID, id uuid.UUID) error {
	return deleted(conn(ctx, r.db, tx).Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&model.Venta{}))
}
