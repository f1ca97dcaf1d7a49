package router

import (
	"context"
	"fmt"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/handler"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const limiterPurgeInterval = 5 * time.Minute

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// rdb may be nil: receipts are then not queued. mailer is the same instance the
// email worker sends through, so /health sees its breaker; nil reports "disabled".
// ctx bounds background housekeeping started here.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ownerMW, err := ownerMiddleware(cfg)
	if err != nil {
		return nil, err
	}

	apiLimiter := middleware.RateLimiter(cfg.RateLimit, time.Minute)
	loginLimiter := middleware.LoginRateLimiter()
	go apiLimiter.RunPurge(ctx, limiterPurgeInterval)
	go loginLimiter.RunPurge(ctx, limiterPurgeInterval)

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.ErrorHandler())
	r.Use(apiLimiter.Handler())

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	secuencias := repository.NewSecuenciaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// A nil *Dispatcher must not reach the interface, or the nil check in the
	// payment service would not see it.
	var recibos service.ReciboQueue
	if rdb != nil {
		recibos = worker.NewDispatcher(rdb)
	}

	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, secuencias)
	productoSvc := service.NewProductoService(productoRepo, secuencias)
	ventaSvc := service.NewVentaService(ventaRepo, pagoRepo, clienteRepo, productoRepo, secuencias)
	pagoSvc := service.NewPagoService(pagoRepo, ventaRepo, clienteRepo, secuencias, recibos)
	dashboardSvc := service.NewDashboardService(ventaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, pagoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mailer))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", loginLimiter.Handler(), authH.Registro)
		auth.POST("/login", loginLimiter.Handler(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	v1 := r.Group("/v1", ownerMW)
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/pendientes", ventasH.ListarPendientes)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.PUT("/:id", ventasH.Actualizar)
			ventas.DELETE("/:id", ventasH.Eliminar)
			ventas.GET("/:id/pagos", ventasH.ListarPagos)
		}

		pagos := v1.Group("/pagos")
		{
			pagos.POST("", pagosH.Crear)
			pagos.GET("", pagosH.Listar)
			pagos.GET("/:id", pagosH.ObtenerPorID)
			pagos.DELETE("/:id", pagosH.Eliminar)
		}

		v1.GET("/dashboard", dashboardH.Resumen)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}

func ownerMiddleware(cfg *config.Config) (gin.HandlerFunc, error) {
	switch cfg.AuthMode {
	case "static":
		owner, err := uuid.Parse(cfg.DevOwnerID)
		if err != nil {
			return nil, fmt.Errorf("router: DEV_OWNER_ID: %w", err)
		}
		return middleware.StaticOwner(owner), nil
	default:
		return middleware.JWTAuth(cfg.JWTSecret), nil
	}
}
