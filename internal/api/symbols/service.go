package symbols

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/skybi/symbolist/internal/api/schema"
	"github.com/skybi/symbolist/internal/browse"
	"github.com/skybi/symbolist/internal/config"
	"github.com/skybi/symbolist/internal/storage"
)

// maxSearchLength bounds the search query; the longest symbol names have about 60 characters
const maxSearchLength = 128

// Service represents the symbol API service
type Service struct {
	mtx    sync.Mutex
	server *http.Server
	closed bool

	Config  *config.Config
	Storage storage.Driver
	Browse  *browse.Manager

	writer *schema.Writer
}

// Startup starts up the symbol API and blocks until it is shut down.
// It returns http.ErrServerClosed if Shutdown was called before or while serving.
func (service *Service) Startup() error {
	service.mtx.Lock()
	if service.closed {
		service.mtx.Unlock()
		return http.ErrServerClosed
	}
	server := &http.Server{
		Addr:    service.Config.ListenAddress,
		Handler: service.Handler(),
	}
	service.server = server
	service.mtx.Unlock()

	return server.ListenAndServe()
}

// Shutdown shuts down the symbol API
func (service *Service) Shutdown() {
	service.mtx.Lock()
	defer service.mtx.Unlock()
	service.closed = true
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

// Handler builds the HTTP router serving all symbol API endpoints
func (service *Service) Handler() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the symbol API experienced an unexpected error")
		},
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: service.Config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the API endpoint handlers
	service.registerEndpoints(router)

	return router
}

func (service *Service) registerEndpoints(router chi.Router) {
	// Register the symbol controller endpoints
	router.Get("/v1/symbols", service.EndpointGetSymbols)
	router.Get("/v1/symbols/{name}", service.EndpointGetSymbol)
	router.Get("/v1/glyphs/{glyph}", service.EndpointGetSymbolByGlyph)
	router.Put("/v1/symbols", withMiddlewares(service.EndpointReplaceSymbols, service.MiddlewareVerifyAdmin))

	// Register the browsing session controller endpoints
	router.Post("/v1/browse", service.EndpointCreateBrowseSession)
	router.Get("/v1/browse/{id}", withMiddlewares(service.EndpointGetBrowseSession, service.MiddlewareFetchSession))
	router.Patch("/v1/browse/{id}", withMiddlewares(service.EndpointSearchBrowseSession, service.MiddlewareFetchSession))
	router.Post("/v1/browse/{id}/next", withMiddlewares(service.EndpointNextPage, service.MiddlewareFetchSession))
	router.Post("/v1/browse/{id}/previous", withMiddlewares(service.EndpointPreviousPage, service.MiddlewareFetchSession))
	router.Put("/v1/browse/{id}/page", withMiddlewares(service.EndpointGoToPage, service.MiddlewareFetchSession))
	router.Delete("/v1/browse/{id}", withMiddlewares(service.EndpointDeleteBrowseSession, service.MiddlewareFetchSession))
}

func withMiddlewares(end http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	final := end
	for i := len(middlewares); i > 0; i-- {
		final = middlewares[i-1](final)
	}
	return final
}
