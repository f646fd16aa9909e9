package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

// AuthDependencies enables bearer-token authentication. A nil value leaves
// the settle endpoint open and skips mounting the auth service.
type AuthDependencies struct {
	Authenticator auth.Authenticator
	JWTManager    *auth.JWTManager
}

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Metrics         *metrics.Metrics
	Auth            *AuthDependencies
	MaxParticipants int
	MetricsEnabled  bool
	AllowedOrigins  []string
}

// NewRouter wires the Connect services and operational endpoints.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	if deps.MetricsEnabled && deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	// Outermost first: metrics see every call, logging sees the caller.
	settleInterceptors := []connect.Interceptor{}
	if deps.Metrics != nil {
		settleInterceptors = append(settleInterceptors, middleware.MetricsInterceptor(deps.Metrics))
	}
	authInterceptors := append([]connect.Interceptor{}, settleInterceptors...)
	if deps.Auth != nil {
		settleInterceptors = append(settleInterceptors, middleware.RequireAuth(deps.Auth.JWTManager))
		authInterceptors = append(authInterceptors,
			middleware.RequireAuth(deps.Auth.JWTManager, apiconnect.AuthServiceGetCurrentUserProcedure))
	}
	settleInterceptors = append(settleInterceptors, middleware.LoggingInterceptor())
	authInterceptors = append(authInterceptors, middleware.LoggingInterceptor())

	settleSvc := service.NewSettleService(deps.MaxParticipants, deps.Metrics)
	settlePath, settleHandler := apiconnect.NewSettleServiceHandler(settleSvc,
		connect.WithInterceptors(settleInterceptors...))
	mux.Handle(settlePath, settleHandler)

	if deps.Auth != nil {
		authSvc := service.NewAuthService(deps.Auth.Authenticator, deps.Auth.JWTManager, logger)
		authPath, authHandler := apiconnect.NewAuthServiceHandler(authSvc,
			connect.WithInterceptors(authInterceptors...))
		mux.Handle(authPath, authHandler)
		logger.Info("Authentication enabled")
	}

	return middleware.CORS(deps.AllowedOrigins)(middleware.RequestLogging(mux))
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to write JSON response", "error", err)
	}
}
