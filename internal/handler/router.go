package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payconnect/internal/handler/api"
	"payconnect/internal/handler/middleware"
	"payconnect/internal/pkg/config"
)

var startedAt = time.Now()

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, paymentHandler *api.PaymentHandler, webhookHandler *api.WebhookHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, paymentHandler, webhookHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, paymentHandler *api.PaymentHandler, webhookHandler *api.WebhookHandler) {
	engine.GET("/", landingPage)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/test", Handler: liveness},
			{Method: http.MethodPost, Path: "/momo-payment", Handler: paymentHandler.Initiate},
			{Method: http.MethodPost, Path: "/webhook/moolre", Handler: webhookHandler.Receive},
		})
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Route not found"}})
	})
}

func landingPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, "<h1>Payconnect backend running</h1>")
}

// @Summary Liveness probe
// @Description Check that the backend answers API traffic
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/test [get]
func liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend live"})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(startedAt).Seconds(),
		"timestamp": time.Now().UnixMilli(),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
