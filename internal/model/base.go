package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns a random UUID when the primary key is still zero.
// IDs are generated in Go so the same models work on Postgres and SQLite.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *Usuario) BeforeCreate(*gorm.DB) error  { newID(&u.ID); return nil }
func (c *Cliente) BeforeCreate(*gorm.DB) error  { newID(&c.ID); return nil }
func (p *Producto) BeforeCreate(*gorm.DB) error { newID(&p.ID); return nil }
func (v *Venta) BeforeCreate(*gorm.DB) error    { newID(&v.ID); return nil }
func (p *Pago) BeforeCreate(*gorm.DB) error     { newID(&p.ID); return nil }

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Usuario{},
		&Secuencia{},
		&Cliente{},
		&Producto{},
		&Venta{},
		&Pago{},
	}
}
