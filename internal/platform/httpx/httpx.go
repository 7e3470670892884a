// Package httpx reúne los helpers HTTP que antes estaban duplicados en cada
// módulo (writeJSON). Todas las respuestas de error tienen la forma
// {"error": "<mensaje>"}.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"petrecord/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var ErrInvalidJSON = errors.New("invalid json")

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Error string `json:"error" example:"Pet not found"`
}

// MessageResponse es el cuerpo de las respuestas de borrado.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// ServerError registra el error real y responde 500 con un mensaje genérico.
// El detalle del driver nunca sale al cliente.
func ServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context()).Error(msg, map[string]any{
		"error":  err.Error(),
		"method": r.Method,
		"path":   r.URL.Path,
	})
	Error(w, http.StatusInternalServerError, msg)
}

// IDParam lee un parámetro de ruta entero. Rechaza vacíos, signos sueltos y
// sufijos no numéricos ("12abc").
func IDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(raw, 10, 64)
}

// DecodeJSON decodifica el body en v. Un body vacío deja v en su valor cero
// para que la validación de campos requeridos responda el mensaje correcto.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidJSON
	}
	return nil
}
