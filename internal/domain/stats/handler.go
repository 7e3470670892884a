package stats

import (
	"net/http"

	"petrecord/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Conteo de actividades por mascota
// @Description Mapa nombre de mascota -> actividad -> cantidad. Mascotas sin logs aparecen con {}.
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]map[string]int
// @Failure 500 {object} httpx.ErrorResponse
// @Router /stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			httpx.ServerError(w, r, "Failed to fetch statistics", err)
			return
		}
		httpx.JSON(w, http.StatusOK, sum)
	}
}
