package middleware

import (
	"net/http"
	"strings"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	OwnerKey  = "owner_id"
)

// JWTClaims are the custom claims embedded in every token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Tipo     string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer access token and scopes the request to its user.
// Refresh tokens are rejected here; they are only good for /v1/auth/refresh.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.Tipo != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		owner, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(OwnerKey, owner)
		c.Next()
	}
}

// StaticOwner scopes every request to a fixed account (AUTH_MODE=static).
// Meant for single-user installs and local development.
func StaticOwner(owner uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(OwnerKey, owner)
		c.Next()
	}
}

// OwnerID returns the account the request is scoped to.
func OwnerID(c *gin.Context) uuid.UUID {
	owner, _ := c.MustGet(OwnerKey).(uuid.UUID)
	return owner
}

// GetClaims returns the token claims, or nil under StaticOwner.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.Get(ClaimsKey)
	jc, _ := claims.(*JWTClaims)
	return jc
}
