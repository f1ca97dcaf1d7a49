package repository

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductoRepository interface {
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error)
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Producto, error)
	Create(ctx context.Context, tx *gorm.DB, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&productos).Error
	return productos, translate(err)
}

func (r *productoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", id, usuarioID).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Producto) error {
	return translate(conn(ctx, r.db, tx).Create(p).Error)
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	res := r.db.WithContext(ctx).
		Model(&model.Producto{}).
		Where("id = ? AND usuario_id = ?", p.ID, p.UsuarioID).
		Select("nombre", "descripcion", "categoria", "precio", "stock", "updated_at").
		Updates(p)
	return deleted(res)
}

// Delete fails with ErrEnUso while sales still reference the product.
func (r *productoRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&model.Producto{}))
}
