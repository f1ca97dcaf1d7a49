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

type ClienteService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Obtener(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error
}

type clienteService struct {
	repo       repository.ClienteRepository
	secuencias repository.SecuenciaRepository
}

func NewClienteService(repo repository.ClienteRepository, secuencias repository.SecuenciaRepository) ClienteService {
	return &clienteService{repo: repo, secuencias: secuencias}
}

func (s *clienteService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	data, err := validation.Cliente(req)
	if err != nil {
		return nil, err
	}

	c := model.Cliente{
		UsuarioID: usuarioID,
		Nombre:    data.Nombre,
		Email:     data.Email,
		Telefono:  data.Telefono,
		Direccion: data.Direccion,
	}
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		code, err := s.secuencias.NextCodigo(ctx, tx, usuarioID, repository.EntidadCliente)
		if err != nil {
			return err
		}
		c.Codigo = code
		return s.repo.Create(ctx, tx, &c)
	})
	if err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Obtener(ctx context.Context, usuarioID, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrClienteNoEncontrado)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Actualizar(ctx context.Context, usuarioID, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	data, err := validation.Cliente(req)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrClienteNoEncontrado)
	}

	c.Nombre = data.Nombre
	c.Email = data.Email
	c.Telefono = data.Telefono
	c.Direccion = data.Direccion
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, orNotFound(err, ErrClienteNoEncontrado)
	}
	return s.Obtener(ctx, usuarioID, id)
}

// Eliminar is a hard delete. Clients with sales cannot be removed, since the
// sales keep only a name snapshot and would lose their reference.
func (s *clienteService) Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error {
	err := s.repo.Delete(ctx, usuarioID, id)
	if errors.Is(err, ErrEnUso) {
		return &enUsoError{"El cliente tiene ventas registradas y no puede eliminarse"}
	}
	return orNotFound(err, ErrClienteNoEncontrado)
}
