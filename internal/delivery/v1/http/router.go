package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(menuUC usecase.MenuUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Logger)
	r.router.Use(middleware.Recoverer)
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.router.Route("/api", func(api chi.Router) {
		menuHandler := NewMenuHandler(menuUC, r.logger)
		registerMenuRoutes(api, menuHandler)

		uploadHandler := NewUploadHandler(menuUC, r.logger)
		api.Post("/upload", uploadHandler.uploadImage)
	})

	dashHandler := NewDashboardHandler(menuUC, r.logger)
	r.router.Get("/dashboard", dashHandler.showDashboard)
}

func registerMenuRoutes(router chi.Router, menuHandler *MenuHandler) {
	router.Route("/menu", func(m chi.Router) {
		m.Get("/", menuHandler.getMenu)
		m.Get("/{category}", menuHandler.getCategory)
		m.Post("/{category}", menuHandler.createItem)
		m.Put("/{category}/{id}", menuHandler.updateItem)
		m.Delete("/{category}/{id}", menuHandler.deleteItem)
	})
}
