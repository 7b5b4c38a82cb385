package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/photos-gateway/internal/api"
	"github.com/phrazzld/photos-gateway/internal/api/health"
	apiMiddleware "github.com/phrazzld/photos-gateway/internal/api/middleware"
	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	development := app.config.Server.IsDevelopment()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location", apiMiddleware.TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Environment(development))
	r.Use(apiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health and, in development, the OpenAPI document and docs UI.
	humaAPI := humachi.New(r, app.humaConfig(development))
	health.NewHandler(app.logger).SetupRoutes(humaAPI)

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	albumHandler := api.NewAlbumHandler(app.albumService, app.logger)
	photoHandler := api.NewPhotoHandler(app.photoService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/profile", authHandler.Profile)
			r.With(apiMiddleware.RequireRole(domain.RoleAdmin)).Get("/auth/admin-only", authHandler.AdminOnly)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/albums", func(r chi.Router) {
				r.Get("/", albumHandler.List)
				r.Post("/", albumHandler.Create)
				r.Get("/user/{userId}", albumHandler.ListByUser)
				r.Get("/{id}", albumHandler.Get)
				r.Put("/{id}", albumHandler.Update)
				r.Delete("/{id}", albumHandler.Delete)
			})

			r.Route("/photos", func(r chi.Router) {
				r.Get("/", photoHandler.List)
				r.Post("/", photoHandler.Create)
				r.Get("/search", photoHandler.Search)
				r.Get("/album/{albumId}", photoHandler.ListByAlbum)
				r.Get("/{id}", photoHandler.Get)
				r.Put("/{id}", photoHandler.Update)
				r.Delete("/{id}", photoHandler.Delete)
			})
		})
	})

	return r
}

// humaConfig builds the huma configuration. Outside development the
// OpenAPI document, schemas and docs UI are not served.
func (app *application) humaConfig(development bool) huma.Config {
	config := huma.DefaultConfig("Photos Gateway API", version)
	config.Info.Description = "CRUD gateway over the JSONPlaceholder users, albums and photos."
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	// Responses keep their plain shape, without a $schema link.
	config.CreateHooks = nil

	if !development {
		config.OpenAPIPath = ""
		config.DocsPath = ""
		config.SchemasPath = ""
	}
	return config
}
