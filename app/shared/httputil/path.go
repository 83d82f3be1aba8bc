package httputil

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// PathParam returns the named chi URL parameter, percent-decoded. chi matches
// against r.URL.RawPath when the request carries one, so "R%26D" arrives
// undecoded; otherwise the parameter is already decoded.
func PathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q in path", key, raw)
	}
	return v, nil
}

// NameParam reads the {name} parameter, writing 400 when it cannot be
// decoded. ok is false once the response has been written.
func NameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := PathParam(r, "name")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return name, true
}
