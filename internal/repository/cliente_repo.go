package repository

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository is the owner-scoped store for clients.
type ClienteRepository interface {
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Cliente, error)
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Cliente, error)
	Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) DB() *gorm.DB { return r.db }

func (r *clienteRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&clientes).Error
	return clientes, translate(err)
}

func (r *clienteRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", id, usuarioID).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error {
	return translate(conn(ctx, r.db, tx).Create(c).Error)
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cliente{}).
		Where("id = ? AND usuario_id = ?", c.ID, c.UsuarioID).
		Select("nombre", "email", "telefono", "direccion", "updated_at").
		Updates(c)
	return deleted(res)
}

// Delete fails with ErrEnUso while sales still reference the client.
func (r *clienteRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&model.Cliente{}))
}
