package service

import (
	"context"
	"errors"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error
}

type productoService struct {
	repo       repository.ProductoRepository
	secuencias repository.SecuenciaRepository
}

func NewProductoService(repo repository.ProductoRepository, secuencias repository.SecuenciaRepository) ProductoService {
	return &productoService{repo: repo, secuencias: secuencias}
}

func (s *productoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	data, err := validation.Producto(req)
	if err != nil {
		return nil, err
	}

	p := model.Producto{
		UsuarioID:   usuarioID,
		Nombre:      data.Nombre,
		Descripcion: data.Descripcion,
		Categoria:   data.Categoria,
		Precio:      data.Precio,
		Stock:       data.Stock,
	}
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		code, err := s.secuencias.NextCodigo(ctx, tx, usuarioID, repository.EntidadProducto)
		if err != nil {
			return err
		}
		p.Codigo = code
		return s.repo.Create(ctx, tx, &p)
	})
	if err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

func (s *productoService) Obtener(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrProductoNoEncontrado)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	data, err := validation.Producto(req)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrProductoNoEncontrado)
	}

	p.Nombre = data.Nombre
	p.Descripcion = data.Descripcion
	p.Categoria = data.Categoria
	p.Precio = data.Precio
	p.Stock = data.Stock
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, orNotFound(err, ErrProductoNoEncontrado)
	}
	return s.Obtener(ctx, usuarioID, id)
}

func (s *productoService) Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error {
	err := s.repo.Delete(ctx, usuarioID, id)
	if errors.Is(err, ErrEnUso) {
		return &enUsoError{"El producto tiene ventas registradas y no puede eliminarse"}
	}
	return orNotFound(err, ErrProductoNoEncontrado)
}
