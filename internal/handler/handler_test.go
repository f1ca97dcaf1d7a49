package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func serveError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err)
	return w
}

func TestRespondError_Estados(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validacion", &validation.Error{Fields: map[string]string{"monto": "gt"}}, http.StatusUnprocessableEntity},
		{"no encontrado", service.ErrVentaNoEncontrada, http.StatusNotFound},
		{"no encontrado envuelto", fmt.Errorf("cargar: %w", service.ErrNotFound), http.StatusNotFound},
		{"venta pagada", service.ErrVentaPagada, http.StatusConflict},
		{"excede saldo", &ledger.MontoExcedeSaldoError{Saldo: decimal.NewFromInt(200), Monto: decimal.NewFromInt(250)}, http.StatusConflict},
		{"total menor", service.ErrTotalMenorQuePagado, http.StatusConflict},
		{"en uso", service.ErrEnUso, http.StatusConflict},
		{"duplicado", service.ErrDuplicado, http.StatusConflict},
		{"credenciales", service.ErrCredenciales, http.StatusUnauthorized},
		{"token", service.ErrTokenInvalido, http.StatusUnauthorized},
		{"store", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, serveError(tc.err).Code)
		})
	}
}

func TestRespondError_Cuerpos(t *testing.T) {
	w := serveError(&validation.Error{Fields: map[string]string{"monto": "gt"}})
	var verr struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.Equal(t, "gt", verr.Fields["monto"])

	w = serveError(&ledger.MontoExcedeSaldoError{Saldo: decimal.NewFromInt(200), Monto: decimal.NewFromInt(250)})
	assert.Contains(t, w.Body.String(), "S/ 200.00")

	w = serveError(errors.New("pq: password authentication failed"))
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "Error interno del servidor")
}

func TestParamID_Malformado(t *testing.T) {
	r := gin.New()
	r.GET("/ventas/:id", func(c *gin.Context) {
		if _, ok := paramID(c, "id", ventaNoEncontrada); ok {
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ventas/no-es-uuid", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ventaNoEncontrada)
}

func TestBindJSON_CuerpoInvalido(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var body map[string]any
		if bindJSON(c, &body) {
			c.Status(http.StatusOK)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth_SinRedis(t *testing.T) {
	db, err := infra.NewDatabase("sqlite://file:health?mode=memory&cache=shared")
	require.NoError(t, err)
	r := gin.New()
	r.GET("/health", Health(db, nil, infra.NewMailer(&config.Config{})))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "disabled", body["redis"])
	assert.Equal(t, "disabled", body["smtp"])
	assert.NotContains(t, body, "dlq")
}
