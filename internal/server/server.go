package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/content"
	"github.com/osse101/Adventure_Go/internal/handler"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/metrics"
	"github.com/osse101/Adventure_Go/internal/session"
	"github.com/osse101/Adventure_Go/internal/sse"
	"github.com/osse101/Adventure_Go/internal/trade"
)

// Dependencies are the services the HTTP surface exposes. Readiness and
// Cache are empty when the corresponding backend is not configured.
type Dependencies struct {
	Readiness  []handler.ReadinessCheck
	Catalog    *content.Catalog
	Sessions   session.Service
	Characters character.Service
	Trades     trade.Service
	Hub        *sse.Hub
	Cache      handler.CacheInspector
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(apiKey string, trustedProxies []string, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness...))
	r.Get("/version", handler.HandleVersion(deps.Catalog))
	r.Handle("/metrics", promhttp.Handler())

	if deps.Hub != nil {
		r.Get("/events", sse.Handler(deps.Hub))
	}

	if deps.Catalog != nil {
		r.Get("/monsters", handler.HandleListMonsters(deps.Catalog))
	}

	r.Route("/adventures", func(r chi.Router) {
		r.Get("/", handler.HandleListAdventures(deps.Sessions))
		r.Route("/{groupID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetAdventure(deps.Sessions))
			r.Post("/", handler.HandleStartAdventure(deps.Sessions))
			r.Post("/join", handler.HandleJoinAdventure(deps.Sessions))
			r.Post("/leave", handler.HandleLeaveAdventure(deps.Sessions))
			r.Post("/react", handler.HandleReact(deps.Sessions))
			r.Post("/resolve", handler.HandleResolveAdventure(deps.Sessions))
		})
	})

	r.Route("/characters/{userID}", func(r chi.Router) {
		r.Get("/", handler.HandleGetCharacter(deps.Characters))
		r.Get("/backpack", handler.HandleGetBackpack(deps.Characters))
		r.Post("/equip", handler.HandleEquip(deps.Characters))
		r.Post("/unequip", handler.HandleUnequip(deps.Characters))

		r.Route("/loadouts", func(r chi.Router) {
			r.Post("/", handler.HandleSaveLoadout(deps.Characters))
			r.Post("/{loadout}/equip", handler.HandleEquipLoadout(deps.Characters))
			r.Delete("/{loadout}", handler.HandleDeleteLoadout(deps.Characters))
		})

		r.Post("/skills", handler.HandleAllocateSkill(deps.Characters))
		r.Post("/skills/reset", handler.HandleResetSkills(deps.Characters))
		r.Post("/class", handler.HandleSetClass(deps.Characters))
		r.Post("/ability", handler.HandleUseAbility(deps.Characters))
		r.Post("/pet", handler.HandleAdoptPet(deps.Characters))
		r.Post("/rebirth", handler.HandleRebirth(deps.Characters))
		r.Post("/chests/open", handler.HandleOpenChests(deps.Characters))
		r.Post("/sell", handler.HandleSellItem(deps.Characters))
	})

	r.Route("/trade", func(r chi.Router) {
		r.Post("/currency", handler.HandleSendCurrency(deps.Trades))
		r.Post("/item", handler.HandleGiveItem(deps.Trades))
	})

	adminHandler := handler.NewAdminHandler(deps.Sessions, deps.Hub, deps.Cache)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", adminHandler.HandleStats)
		r.Post("/sweep", adminHandler.HandleSweep)
		r.Delete("/cache/{userID}", adminHandler.HandleInvalidateCache)
		r.Post("/sse/broadcast", adminHandler.HandleBroadcast)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remoteAddr", r.RemoteAddr,
			"contentLength", r.ContentLength,
			"userAgent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"durationMs", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
