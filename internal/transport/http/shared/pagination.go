package shared

import (
	"net/http"
	"strconv"
)

type Page struct {
	Skip  int
	Limit int
}

// ParsePage reads skip/limit query parameters, clamping limit to maxLimit.
func ParsePage(r *http.Request, defaultLimit, maxLimit int) Page {
	limit := defaultLimit
	skip := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Page{Skip: skip, Limit: limit}
}
