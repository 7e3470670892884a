package activitylogs

import (
	"errors"
	"net/http"

	"petrecord/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/logs", func(lr chi.Router) {
		lr.Get("/", listLogsHandler(svc))
		lr.Post("/", createLogHandler(svc))

		// Logs de una mascota (antes que /{logID} para que "pet" no se lea como id)
		lr.Get("/pet/{petID}", listPetLogsHandler(svc))

		lr.Get("/{logID}", getLogHandler(svc))
		lr.Put("/{logID}", updateLogHandler(svc))
		lr.Delete("/{logID}", deleteLogHandler(svc))
	})
}

// logRequest es el cuerpo de POST y PUT. pet_id 0 o ausente se trata como faltante.
type logRequest struct {
	Date     string `json:"date" example:"2025-10-01"` // YYYY-MM-DD
	PetID    int64  `json:"pet_id" example:"1"`
	Activity string `json:"activity" example:"Walk"`
	Note     string `json:"note" example:"Morning walk in park"`
}

// LogResponse es un log sin datos de la mascota (alta, edición y detalle de mascota).
type LogResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	PetID    int64   `json:"pet_id"`
	Activity string  `json:"activity"`
	Note     *string `json:"note"`
}

// entryResponse es un log con nombre, especie y raza de la mascota.
type entryResponse struct {
	LogResponse
	PetName *string `json:"pet_name"`
	Species *string `json:"species"`
	Breed   *string `json:"breed"`
}

// listLogsHandler godoc
// @Summary Listar logs de actividad
// @Description Todos los logs con nombre/especie/raza de la mascota, ordenados por fecha desc y luego id desc.
// @Tags logs
// @Produce json
// @Success 200 {array} entryResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.ServerError(w, r, "Failed to fetch activity logs", err)
			return
		}
		httpx.JSON(w, http.StatusOK, toEntryResponses(items))
	}
}

// getLogHandler godoc
// @Summary Obtener un log
// @Tags logs
// @Produce json
// @Param logID path int true "ID del log"
// @Success 200 {object} entryResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid log ID"
// @Failure 404 {object} httpx.ErrorResponse "Activity log not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs/{logID} [get]
func getLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "logID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid log ID")
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Activity log not found")
				return
			}
			httpx.ServerError(w, r, "Failed to fetch activity log", err)
			return
		}

		httpx.JSON(w, http.StatusOK, toEntryResponse(e))
	}
}

// createLogHandler godoc
// @Summary Crear log de actividad
// @Description date, pet_id y activity son obligatorios. pet_id debe existir.
// @Tags logs
// @Accept json
// @Produce json
// @Param payload body logRequest true "Datos del log"
// @Success 201 {object} LogResponse
// @Failure 400 {object} httpx.ErrorResponse "campos faltantes / Pet not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs [post]
func createLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		l, err := svc.Create(r.Context(), req.input())
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.ServerError(w, r, "Failed to create activity log", err)
			return
		}

		httpx.JSON(w, http.StatusCreated, ToLogResponse(l))
	}
}

// updateLogHandler godoc
// @Summary Reemplazar log de actividad
// @Description Reemplazo completo: note omitido queda en null.
// @Tags logs
// @Accept json
// @Produce json
// @Param logID path int true "ID del log"
// @Param payload body logRequest true "Datos del log"
// @Success 200 {object} LogResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Activity log not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs/{logID} [put]
func updateLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "logID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid log ID")
			return
		}

		var req logRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		l, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Activity log not found")
			default:
				httpx.ServerError(w, r, "Failed to update activity log", err)
			}
			return
		}

		httpx.JSON(w, http.StatusOK, ToLogResponse(l))
	}
}

// deleteLogHandler godoc
// @Summary Borrar log de actividad
// @Tags logs
// @Produce json
// @Param logID path int true "ID del log"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid log ID"
// @Failure 404 {object} httpx.ErrorResponse "Activity log not found"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs/{logID} [delete]
func deleteLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "logID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid log ID")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Activity log not found")
				return
			}
			httpx.ServerError(w, r, "Failed to delete activity log", err)
			return
		}

		httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Activity log deleted successfully"})
	}
}

// listPetLogsHandler godoc
// @Summary Logs de una mascota
// @Description Lista vacía si la mascota no tiene logs o no existe.
// @Tags logs
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} entryResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid pet ID"
// @Failure 500 {object} httpx.ErrorResponse
// @Router /logs/pet/{petID} [get]
func listPetLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid pet ID")
			return
		}

		items, err := svc.ListForPet(r.Context(), petID)
		if err != nil {
			httpx.ServerError(w, r, "Failed to fetch pet activity logs", err)
			return
		}
		httpx.JSON(w, http.StatusOK, toEntryResponses(items))
	}
}

func (req logRequest) input() Input {
	return Input{
		Date:     req.Date,
		PetID:    req.PetID,
		Activity: req.Activity,
		Note:     req.Note,
	}
}

func ToLogResponse(l Log) LogResponse {
	return LogResponse{
		ID:       l.ID,
		Date:     l.Date,
		PetID:    l.PetID,
		Activity: l.Activity,
		Note:     l.Note,
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		LogResponse: ToLogResponse(e.Log),
		PetName:     e.PetName,
		Species:     e.PetSpecies,
		Breed:       e.PetBreed,
	}
}

func toEntryResponses(items []Entry) []entryResponse {
	out := make([]entryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEntryResponse(e))
	}
	return out
}
