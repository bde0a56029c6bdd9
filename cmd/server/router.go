package main

import (
	"net/http"

	"github.com/flakeychalk/forcard/internal/api"
	apiMiddleware "github.com/flakeychalk/forcard/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(
		apiMiddleware.NewTraceMiddleware(app.logger),
	) // Add trace IDs for improved error handling

	paginator := api.Paginator{
		DefaultLimit: app.config.Deck.PageSize,
		MaxLimit:     app.config.Deck.MaxPageSize,
	}

	// Create handlers over the shared session
	screenHandler := api.NewScreenHandler(app.session, paginator, app.logger)
	cardHandler := api.NewCardHandler(app.session, paginator, app.logger)
	formHandler := api.NewFormHandler(app.session, app.logger)
	eventsHandler := api.NewEventsHandler(
		app.eventEmitter,
		app.config.Events.SubscriberBuffer,
		api.DefaultHeartbeat,
		app.logger,
	)

	// Server-rendered screen
	r.Get("/", screenHandler.Render)
	r.Post("/clear", screenHandler.Clear)
	r.Post("/new", screenHandler.NewFlashcard)
	r.Post("/cards/{id}/flip", screenHandler.Flip)
	r.Post("/form", screenHandler.Submit)
	r.Post("/form/dismiss", screenHandler.Dismiss)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Card list endpoints
		r.Get("/cards", cardHandler.ListCards)
		r.Post("/cards", cardHandler.AddCard)
		r.Delete("/cards", cardHandler.ClearCards)
		r.Get("/cards/{id}", cardHandler.GetCard)
		r.Post("/cards/{id}/flip", cardHandler.FlipCard)

		// Creation form endpoints
		r.Get("/form", formHandler.GetForm)
		r.Post("/form/open", formHandler.OpenForm)
		r.Put("/form/question", formHandler.UpdateQuestion)
		r.Put("/form/answer", formHandler.UpdateAnswer)
		r.Post("/form/submit", formHandler.SubmitForm)
		r.Post("/form/dismiss", formHandler.DismissForm)

		// Change stream
		r.Get("/events", eventsHandler.Stream)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With", "Last-Event-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         86400,
	})

	return corsHandler.Handler(r)
}
