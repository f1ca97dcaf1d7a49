package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() { gin.SetMode(gin.TestMode) }

type api struct {
	t     *testing.T
	h     http.Handler
	token string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := infra.NewDatabase("sqlite://file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newAPI(t *testing.T, cfg *config.Config, db *gorm.DB) *api {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 1000
	}
	r, err := New(ctx, cfg, db, nil, infra.NewMailer(cfg))
	require.NoError(t, err)
	return &api{t: t, h: r}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.h.ServeHTTP(w, req)
	return w
}

func (a *api) ok(method, path string, body any, code int) map[string]any {
	a.t.Helper()
	w := a.do(method, path, body)
	require.Equalf(a.t, code, w.Code, "%s %s: %s", method, path, w.Body.String())
	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return out
}

func jwtConfig() *config.Config {
	return &config.Config{AuthMode: "jwt", JWTSecret: "secreto-de-prueba", JWTExpirationHours: 1, JWTRefreshHours: 2}
}

func TestFlujoCompleto(t *testing.T) {
	a := newAPI(t, jwtConfig(), newTestDB(t))

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/v1/clientes", nil).Code)

	a.ok(http.MethodPost, "/v1/auth/registro", map[string]any{
		"username": "brasa", "nombre": "Brasa SAC", "password": "clave-segura",
	}, http.StatusCreated)
	login := a.ok(http.MethodPost, "/v1/auth/login", map[string]any{"username": "brasa", "password": "clave-segura"}, http.StatusOK)
	a.token = login["access_token"].(string)

	cliente := a.ok(http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Ana Torres"}, http.StatusCreated)
	assert.Equal(t, "C-0001", cliente["cliente_id"])
	producto := a.ok(http.MethodPost, "/v1/productos", map[string]any{
		"nombre": "Consultoría", "categoria": "Asesoría", "precio": "300.00",
	}, http.StatusCreated)

	venta := a.ok(http.MethodPost, "/v1/ventas", map[string]any{
		"cliente_id": cliente["id"], "producto_id": producto["id"], "fecha": "2024-03-10",
		"tipo_pago": "cuotas", "monto_total": "300", "num_cuotas": 3,
	}, http.StatusCreated)
	assert.Equal(t, "PENDIENTE", venta["estado"])
	assert.Equal(t, "100", venta["monto_cuota"])
	ventaID := venta["id"].(string)

	a.ok(http.MethodPost, "/v1/pagos", map[string]any{
		"venta_id": ventaID, "fecha_pago": "2024-03-11", "monto": "100", "metodo_pago": "Yape",
	}, http.StatusCreated)

	w := a.do(http.MethodPost, "/v1/pagos", map[string]any{
		"venta_id": ventaID, "fecha_pago": "2024-03-12", "monto": "250", "metodo_pago": "Yape",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "S/ 200.00")

	w = a.do(http.MethodPost, "/v1/pagos", map[string]any{
		"venta_id": ventaID, "fecha_pago": "12/03/2024", "monto": "0", "metodo_pago": "Yape",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	got := a.ok(http.MethodGet, "/v1/ventas/"+ventaID, nil, http.StatusOK)
	assert.Equal(t, "200", got["saldo_pendiente"])

	w = a.do(http.MethodGet, "/v1/ventas/"+ventaID+"/pagos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pagos []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pagos))
	assert.Len(t, pagos, 1)

	w = a.do(http.MethodGet, "/v1/ventas?estado=PENDIENTE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pendientes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pendientes))
	assert.Len(t, pendientes, 1)

	dash := a.ok(http.MethodGet, "/v1/dashboard?periodo=mes", nil, http.StatusOK)
	kpis := dash["kpis"].(map[string]any)
	assert.EqualValues(t, 1, kpis["total_ventas"])
	assert.Equal(t, "200", kpis["saldo_pendiente"])

	assert.Equal(t, http.StatusConflict, a.do(http.MethodDelete, "/v1/clientes/"+cliente["id"].(string), nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/ventas/"+ventaID, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/ventas/"+ventaID, nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/v1/clientes/"+cliente["id"].(string), nil).Code)
}

func TestRefreshNoSirveComoAcceso(t *testing.T) {
	a := newAPI(t, jwtConfig(), newTestDB(t))
	a.ok(http.MethodPost, "/v1/auth/registro", map[string]any{
		"username": "brasa", "nombre": "Brasa SAC", "password": "clave-segura",
	}, http.StatusCreated)
	login := a.ok(http.MethodPost, "/v1/auth/login", map[string]any{"username": "brasa", "password": "clave-segura"}, http.StatusOK)

	a.token = login["refresh_token"].(string)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/v1/clientes", nil).Code)

	a.token = ""
	nuevo := a.ok(http.MethodPost, "/v1/auth/refresh", map[string]any{"refresh_token": login["refresh_token"]}, http.StatusOK)
	a.token = nuevo["access_token"].(string)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/clientes", nil).Code)

	a.token = ""
	w := a.do(http.MethodPost, "/v1/auth/login", map[string]any{"username": "brasa", "password": "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuenosAislados(t *testing.T) {
	db := newTestDB(t)
	a := newAPI(t, jwtConfig(), db)
	for _, u := range []string{"uno", "dos"} {
		a.ok(http.MethodPost, "/v1/auth/registro", map[string]any{"username": u, "nombre": "Dueño " + u, "password": "clave-segura"}, http.StatusCreated)
	}

	a.token = a.ok(http.MethodPost, "/v1/auth/login", map[string]any{"username": "uno", "password": "clave-segura"}, http.StatusOK)["access_token"].(string)
	cliente := a.ok(http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Ana Torres"}, http.StatusCreated)

	a.token = a.ok(http.MethodPost, "/v1/auth/login", map[string]any{"username": "dos", "password": "clave-segura"}, http.StatusOK)["access_token"].(string)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/clientes/"+cliente["id"].(string), nil).Code)
	segundo := a.ok(http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Luis Díaz"}, http.StatusCreated)
	assert.Equal(t, "C-0001", segundo["cliente_id"])
}

func TestModoEstatico(t *testing.T) {
	db := newTestDB(t)
	owner := &model.Usuario{Username: "local", Nombre: "Local", PasswordHash: "x", Activo: true}
	require.NoError(t, db.Create(owner).Error)

	a := newAPI(t, &config.Config{AuthMode: "static", DevOwnerID: owner.ID.String()}, db)
	a.ok(http.MethodPost, "/v1/clientes", map[string]any{"nombre": "Ana Torres"}, http.StatusCreated)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/clientes/"+uuid.NewString(), nil).Code)
}

func TestModoEstatico_OwnerInvalido(t *testing.T) {
	_, err := New(context.Background(), &config.Config{AuthMode: "static", DevOwnerID: "x"}, newTestDB(t), nil, nil)
	assert.Error(t, err)
}

func TestHealth_ReportaBreakerDelMailer(t *testing.T) {
	cfg := jwtConfig()
	cfg.RateLimit = 1000
	// nothing listens on port 1: every send fails with connection refused
	cfg.SMTPHost, cfg.SMTPPort = "127.0.0.1", 1
	mailer := infra.NewMailer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r, err := New(ctx, cfg, newTestDB(t), nil, mailer)
	require.NoError(t, err)
	a := &api{t: t, h: r}

	assert.Equal(t, "closed", a.ok(http.MethodGet, "/health", nil, http.StatusOK)["smtp"])

	for i := 0; i < infra.DefaultCBConfig().FailureThreshold; i++ {
		require.Error(t, mailer.SendRecibo("ana@example.com", "recibo", "hola", ""))
	}
	assert.Equal(t, "open", a.ok(http.MethodGet, "/health", nil, http.StatusOK)["smtp"])
}
