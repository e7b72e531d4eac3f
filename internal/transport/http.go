// Package transport exposes the application over REST.
package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/upkeephq/upkeep/internal/auth"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
	"github.com/upkeephq/upkeep/internal/repository"
)

// Services bundles everything the HTTP layer dispatches into.
type Services struct {
	Assets     *asset.Service
	Schedules  *schedule.Service
	WorkOrders *workorder.Service
	Users      repository.UserRepository
	Auth       *auth.Service
}

// NewServer creates the REST router with auth and logging middleware.
func NewServer(svcs Services, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	userHandler := &UserHandler{users: svcs.Users, auth: svcs.Auth, logger: logger}
	r.Post("/api/auth/login", userHandler.Login)
	r.Post("/api/auth/register", userHandler.Register)

	assetHandler := &AssetHandler{assets: svcs.Assets, schedules: svcs.Schedules, logger: logger}
	scheduleHandler := &ScheduleHandler{schedules: svcs.Schedules, logger: logger}
	workOrderHandler := &WorkOrderHandler{workOrders: svcs.WorkOrders, logger: logger}

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(svcs.Auth))

		r.Get("/api/auth/me", userHandler.Me)
		r.With(RequirePermission("manage_users")).Get("/api/users", userHandler.List)
		r.With(RequirePermission("manage_users")).Put("/api/users/{id}", userHandler.Update)

		r.With(RequirePermission("view_assets")).Get("/api/assets", assetHandler.List)
		r.With(RequirePermission("view_assets")).Get("/api/assets/{id}", assetHandler.Get)
		r.With(RequirePermission("view_schedules")).Get("/api/assets/{id}/schedules", assetHandler.Schedules)
		r.With(RequirePermission("manage_assets")).Post("/api/assets", assetHandler.Create)
		r.With(RequirePermission("manage_assets")).Put("/api/assets/{id}", assetHandler.Update)
		r.With(RequirePermission("manage_assets")).Delete("/api/assets/{id}", assetHandler.Delete)

		r.With(RequirePermission("view_schedules")).Get("/api/schedules", scheduleHandler.List)
		r.With(RequirePermission("view_schedules")).Get("/api/schedules/{id}", scheduleHandler.Get)
		r.With(RequirePermission("manage_schedules")).Post("/api/schedules", scheduleHandler.Create)
		r.With(RequirePermission("manage_schedules")).Put("/api/schedules/{id}", scheduleHandler.Update)
		r.With(RequirePermission("manage_schedules")).Delete("/api/schedules/{id}", scheduleHandler.Delete)
		r.With(RequirePermission("view_occurrences")).Get("/api/schedules/{id}/occurrences", scheduleHandler.Occurrences)
		r.With(RequirePermission("view_occurrences")).Get("/api/occurrences", scheduleHandler.DueItems)
		r.With(RequirePermission("record_completion")).Post("/api/schedules/{id}/completions", scheduleHandler.RecordCompletion)
		r.With(RequirePermission("view_schedules")).Get("/api/schedules/{id}/completions", scheduleHandler.Completions)
		r.With(RequirePermission("view_schedules")).Get("/api/schedules/{id}/changelog", scheduleHandler.ChangeLog)

		r.With(RequirePermission("view_workorders")).Get("/api/workorders", workOrderHandler.List)
		r.With(RequirePermission("view_workorders")).Get("/api/workorders/{id}", workOrderHandler.Get)
		r.With(RequirePermission("create_workorder")).Post("/api/workorders", workOrderHandler.Create)
		r.With(RequirePermission("update_workorder")).Put("/api/workorders/{id}", workOrderHandler.Update)
		r.With(RequirePermission("manage_workorders")).Delete("/api/workorders/{id}", workOrderHandler.Delete)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			if logger != nil {
				logger.Debug("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration", time.Since(start))
			}
		})
	}
}
