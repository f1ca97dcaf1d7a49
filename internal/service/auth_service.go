package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Token types carried in the "typ" claim.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

type AuthService interface {
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID.String(), Username: u.Username, Nombre: u.Nombre, Email: u.Email}
}

// Registro creates an owner account. Every record the account creates is
// scoped to its id.
func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Email != nil {
		req.Email = optionalString(*req.Email)
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:     req.Username,
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicado) {
			return nil, &duplicadoError{"El usuario ya existe"}
		}
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}
	return s.tokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := ParseToken(s.cfg.JWTSecret, refreshToken)
	if err != nil || claims.Tipo != TokenRefresh {
		return nil, ErrTokenInvalido
	}

	user, err := s.repo.FindByID(ctx, claims.UsuarioID)
	if err != nil || !user.Activo {
		return nil, ErrTokenInvalido
	}
	return s.tokens(user)
}

func (s *authService) tokens(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, TokenAccess, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, TokenRefresh, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, tipo string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"typ":      tipo,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// Claims is the subset of the JWT the API relies on.
type Claims struct {
	UsuarioID uuid.UUID
	Username  string
	Tipo      string
}

// ParseToken verifies an HS256 token and extracts its claims.
func ParseToken(secret, raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	userIDStr, _ := mc["user_id"].(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	username, _ := mc["username"].(string)
	tipo, _ := mc["typ"].(string)
	return &Claims{UsuarioID: uid, Username: username, Tipo: tipo}, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
