package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// urlID parses the numeric {id} URL parameter. The second return is false
// when the segment is missing or not a positive integer.
func urlID(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
