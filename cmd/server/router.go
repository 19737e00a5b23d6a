package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/restaurant-api/internal/api"
	apiMiddleware "github.com/phrazzld/restaurant-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
//
// Listing restaurants and a restaurant's menu needs a valid token only; every
// other restaurant route also needs an owner or admin role.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	restaurantHandler := api.NewRestaurantHandler(app.restaurantService, app.logger)
	menuHandler := api.NewMenuHandler(app.restaurantService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/restaurants", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", restaurantHandler.ListRestaurants)
		r.Get("/{id}/menu", menuHandler.ListMenuItems)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireOwner)

			r.Post("/", restaurantHandler.CreateRestaurant)
			r.Get("/{id}", restaurantHandler.GetRestaurant)
			r.Put("/{id}", restaurantHandler.UpdateRestaurant)
			r.Delete("/{id}", restaurantHandler.DeleteRestaurant)

			r.Post("/{id}/menu", menuHandler.CreateMenuItem)
			r.Put("/{id}/menu/{item_id}", menuHandler.UpdateMenuItem)
			r.Delete("/{id}/menu/{item_id}", menuHandler.DeleteMenuItem)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
