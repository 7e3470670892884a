package router

import (
	"net/http"

	_ "petrecord/docs"
	"petrecord/internal/adapters/storage"
	"petrecord/internal/domain/activitylogs"
	"petrecord/internal/domain/pets"
	"petrecord/internal/domain/stats"
	"petrecord/internal/middleware"
	"petrecord/internal/platform/httpx"
	"petrecord/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Store  *storage.Store
	Logger logger.Logger // puede ser nil (tests)

	// Orígenes permitidos; vacío o "*" acepta cualquiera.
	CORSOrigins []string
}

type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"PetRecord API is running"`
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(corsHandler(opts.CORSOrigins).Handler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.Error(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpx.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	petsSvc := pets.NewService(opts.Store.Pets)
	logsSvc := activitylogs.NewService(opts.Store.Logs, petsSvc)
	statsSvc := stats.NewService(opts.Store.Stats)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler)

		pets.RegisterRoutes(api, petsSvc, logsSvc)
		activitylogs.RegisterRoutes(api, logsSvc)
		stats.RegisterRoutes(api, statsSvc)
	})

	return r
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})
}

// healthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: "PetRecord API is running",
	})
}
