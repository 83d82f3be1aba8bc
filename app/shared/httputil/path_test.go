package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParam_ThroughRouter(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain", path: "/teams/Byte%20Club", want: "Byte Club"},
		{name: "ampersand", path: "/teams/R%26D%20Squad", want: "R&D Squad"},
		{name: "apostrophe and comma", path: "/teams/O%27Brien%2C%20Ana", want: "O'Brien, Ana"},
		{name: "encoded slash", path: "/teams/AC%2FDC", want: "AC/DC"},
		{name: "plus stays literal", path: "/teams/C++", want: "C++"},
		{name: "literal percent", path: "/teams/100%25%20Club", want: "100% Club"},
		{name: "literal percent beside ampersand", path: "/teams/100%25%20R%26D", want: "100% R&D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := chi.NewRouter()
			r.Get("/teams/{name}", func(w http.ResponseWriter, r *http.Request) {
				name, ok := NameParam(w, r)
				require.True(t, ok)
				got = name
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameParam_BadEscape(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", "R%zzD")
	req := httptest.NewRequest(http.MethodGet, "/teams/R%26D", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	_, ok := NameParam(rec, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid name")
}
