package gateway

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"mycard-service/internal/api/http/middleware"
	"mycard-service/internal/api/swagger"
	"mycard-service/internal/config"
	svc "mycard-service/internal/service"
)

// defaultCORSMaxAge 24 часа
const defaultCORSMaxAge = 86400

// NewRouter собирает HTTP API визиток с middleware.
// Порядок выполнения: Recoverer -> RateLimit -> Logging -> Metrics -> CORS -> handler.
func NewRouter(cardService svc.CardService, cfg *config.ConfigGateway, logger *zap.Logger) http.Handler {
	if cfg == nil {
		cfg = &config.ConfigGateway{}
	}

	h := NewHandler(cardService, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())
	r.Use(setupCORS(cfg).Handler)

	r.Post("/cards", h.CreateCard)
	r.Get("/card", h.GetCard)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	swagger.ServeSwagger(r)

	logger.Info("HTTP routes registered",
		zap.String("cors_allowed_origins", cfg.CORSAllowedOrigins),
		zap.Int("rate_limit_rps", cfg.RateLimitRPS),
	)

	return r
}

// NewServer создает HTTP сервер с таймаутами из конфигурации
func NewServer(addr string, handler http.Handler, cfg *config.ConfigServer) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       seconds(cfg.HTTPReadTimeout),
		WriteTimeout:      seconds(cfg.HTTPWriteTimeout),
		IdleTimeout:       seconds(cfg.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(cfg.HTTPReadHeaderTimeout),
	}
}

// Addr возвращает адрес прослушивания для порта
func Addr(port int) string {
	return "0.0.0.0:" + strconv.Itoa(port)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	origins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = defaultCORSMaxAge
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"X-Requested-With",
		},
		MaxAge: maxAge,
	})
}
