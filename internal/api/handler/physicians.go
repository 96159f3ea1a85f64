package handler

import (
	"net/http"
	"strconv"

	"github.com/carebridge/symptomdesk/internal/api/response"
	"github.com/carebridge/symptomdesk/internal/directory"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// NewListPhysiciansHandler returns an http.HandlerFunc for
// GET /api/v1/physicians. Supports q (name/specialization substring),
// specialization (exact match), page, and limit query parameters.
func NewListPhysiciansHandler(dir DirectoryLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		matched := directory.Filter(dir.Load(r.Context()), directory.FilterParams{
			Query:          q.Get("q"),
			Specialization: q.Get("specialization"),
		})

		page := queryInt(q.Get("page"), 1)
		if page < 1 {
			page = 1
		}
		limit := queryInt(q.Get("limit"), defaultPageLimit)
		if limit < 1 {
			limit = defaultPageLimit
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		total := len(matched)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		response.Collection(w, matched[start:end], response.PaginationMeta{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasNext: end < total,
		})
	}
}

// NewSpecializationsHandler returns an http.HandlerFunc for
// GET /api/v1/physicians/specializations.
func NewSpecializationsHandler(dir DirectoryLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specs := directory.Specializations(dir.Load(r.Context()))
		response.JSON(w, map[string]any{"specializations": specs})
	}
}

func queryInt(v string, defaultVal int) int {
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
