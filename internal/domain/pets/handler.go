package pets

import (
	"context"
	"errors"
	"net/http"

	"petrecord/internal/domain/activitylogs"
	"petrecord/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// LogLister entrega los logs de una mascota para el detalle (GET /pets/{id}).
type LogLister interface {
	ListForPet(ctx context.Context, petID int64) ([]activitylogs.Entry, error)
}

func RegisterRoutes(r chi.Router, svc *Service, logs LogLister) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc, logs))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest es el cuerpo de POST y PUT. name y species son obligatorios.
type petRequest struct {
	Name     string `json:"name" example:"Rex"`
	Species  string `json:"species" example:"Dog"`
	Breed    string `json:"breed" example:"Labrador"`
	Birthday string `json:"birthday" example:"2022-03-20"` // YYYY-MM-DD opcional
	Photo    string `json:"photo" example:"https://example.com/rex.jpg"`
}

// petResponse representa una mascota; opcionales ausentes salen como null.
type petResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    *string `json:"breed"`
	Birthday *string `json:"birthday"`
	Photo    *string `json:"photo"`
}

// petDetailResponse es la mascota con sus logs (fecha desc).
type petDetailResponse struct {
	petResponse
	Logs []activitylogs.LogResponse `json:"logs"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Todas las mascotas ordenadas por nombre.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.ServerError(w, r, "Failed to fetch pets", err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota con sus logs
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petDetailResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid pet ID"
// @Failure 404 {object} httpx.ErrorResponse "Pet not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, logs LogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid pet ID")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Pet not found")
				return
			}
			httpx.ServerError(w, r, "Failed to fetch pet", err)
			return
		}

		entries, err := logs.ListForPet(r.Context(), id)
		if err != nil {
			httpx.ServerError(w, r, "Failed to fetch pet logs", err)
			return
		}

		out := petDetailResponse{
			petResponse: toPetResponse(p),
			Logs:        make([]activitylogs.LogResponse, 0, len(entries)),
		}
		for _, e := range entries {
			out.Logs = append(out.Logs, activitylogs.ToLogResponse(e.Log))
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description name y species obligatorios; breed, birthday (YYYY-MM-DD) y photo (URL http/https) opcionales.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse "Name and species are required"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.ServerError(w, r, "Failed to create pet", err)
			return
		}

		httpx.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Reemplazar mascota
// @Description Reemplazo completo (no PATCH): los opcionales omitidos quedan en null.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Pet not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid pet ID")
			return
		}

		var req petRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Pet not found")
			default:
				httpx.ServerError(w, r, "Failed to update pet", err)
			}
			return
		}

		httpx.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y, por cascada, todos sus logs.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid pet ID"
// @Failure 404 {object} httpx.ErrorResponse "Pet not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid pet ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Pet not found")
				return
			}
			httpx.ServerError(w, r, "Failed to delete pet", err)
			return
		}

		httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Pet and all associated logs deleted successfully"})
	}
}

func (req petRequest) input() Input {
	return Input{
		Name:     req.Name,
		Species:  req.Species,
		Breed:    req.Breed,
		Birthday: req.Birthday,
		Photo:    req.Photo,
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:       p.ID,
		Name:     p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Birthday: p.Birthday,
		Photo:    p.Photo,
	}
}
