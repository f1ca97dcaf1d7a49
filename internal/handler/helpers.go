package handler

import (
	"errors"
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/apierror"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// bindJSON binds the request body. Field rules run in the service layer so
// both the API and internal callers get the same checks.
// Returns false after writing a 400; the caller must return immediately.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// bindQuery binds query-string filters.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	return true
}

// paramID parses the :id path segment. Writes a 404 for malformed ids, since
// no record can have one.
func paramID(c *gin.Context, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(notFound))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(verr.Fields))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrVentaPagada),
		errors.Is(err, service.ErrMontoExcedeSaldo),
		errors.Is(err, service.ErrTotalMenorQuePagado),
		errors.Is(err, service.ErrEnUso),
		errors.Is(err, service.ErrDuplicado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredenciales), errors.Is(err, service.ErrTokenInvalido):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, apierror.Internal())
	}
}
