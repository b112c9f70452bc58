package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/v4ld3m4rjr/spravattus2/internal/auth"
	"github.com/v4ld3m4rjr/spravattus2/internal/service"
)

type API struct {
	Accounts  *service.AccountService
	Profiles  *service.ProfileService
	Responses *service.ResponseService
	Dashboard *service.DashboardService
	Sheets    *service.SheetService
	Export    *service.ExportService
	Auth      *auth.Manager
	Origins   []string
	Log       *zap.SugaredLogger
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(a.loggingMiddleware)
	r.Use(a.corsMiddleware)

	r.Get("/health", a.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", a.handleRegister)
		r.Post("/login", a.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(a.authMiddleware)
		r.Get("/me", a.handleMe)
		r.Get("/profile", a.handleGetProfile)
		r.Put("/profile", a.handleUpdateProfile)

		r.Route("/responses", func(r chi.Router) {
			r.Get("/daily", a.handleGetDaily)
			r.Put("/daily", a.handlePutDaily)
			r.Get("/weekly", a.handleGetWeekly)
			r.Put("/weekly", a.handlePutWeekly)
			r.Get("/monthly", a.handleGetMonthly)
			r.Put("/monthly", a.handlePutMonthly)
			r.Get("/quarterly", a.handleGetQuarterly)
			r.Put("/quarterly", a.handlePutQuarterly)
		})

		r.Get("/dashboard/daily-series", a.handleDailySeries)

		r.Post("/create-sheet", a.handleCreateSheet)
		r.Post("/delete-sheet", a.handleDeleteSheet)
		r.Get("/sheets", a.handleListSheets)
		r.Get("/export", a.handleExport)
	})

	return r
}
