package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDParam(t *testing.T) {
	cases := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"7", 7, true},
		{"-3", -3, true},
		{"12abc", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}

	for _, tc := range cases {
		var (
			got int64
			err error
		)
		r := chi.NewRouter()
		r.Get("/x/{id}", func(_ http.ResponseWriter, req *http.Request) {
			got, err = IDParam(req, "id")
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/"+tc.raw, nil))

		if tc.wantOK {
			require.NoError(t, err, tc.raw)
			assert.Equal(t, tc.want, got)
		} else {
			assert.Error(t, err, tc.raw)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex"}`))
	require.NoError(t, DecodeJSON(w, req, &dst))
	assert.Equal(t, "Rex", dst.Name)

	dst.Name = ""
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSON(w, req, &dst))
	assert.Empty(t, dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, DecodeJSON(w, req, &dst), ErrInvalidJSON)
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "Pet not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Pet not found"}`, w.Body.String())
}
