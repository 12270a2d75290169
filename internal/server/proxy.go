package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/core/congress"
	apperrors "github.com/lawlens/lawlens/internal/errors"
)

// throttleParam opts a proxied call into the shared pace throttle. It
// is consumed here and never forwarded upstream.
const throttleParam = "throttle"

// proxyHandler forwards a /v3 request through the client and writes
// the upstream body verbatim. Query parameters travel as overrides;
// the client drops unrecognized ones the same way it does for library
// callers.
func (s *Server) proxyHandler(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !core.IsResource(resource) {
		apperrors.RespondWithError(w, r, apperrors.NewInvalidInputError("unknown resource family "+strconv.Quote(resource)))
		return
	}

	subPath := chi.URLParam(r, "*")

	q := &congress.Query{Extra: map[string]string{}}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if key == throttleParam {
			q.Throttle = values[0] == "true" || values[0] == "1"
			continue
		}
		q.Extra[key] = values[0]
	}

	result, err := s.client.Fetch(r.Context(), core.Resource(resource), subPath, q)
	if err != nil {
		apperrors.RespondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(q.Extra["format"]))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Body))
}

func contentTypeFor(format string) string {
	if format == "xml" {
		return "application/xml"
	}
	return "application/json"
}
