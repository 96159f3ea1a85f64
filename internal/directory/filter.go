package directory

import (
	"sort"
	"strings"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// FilterParams narrows a directory listing. Query matches name or
// specialization case-insensitively; Specialization matches exactly
// (case-insensitive).
type FilterParams struct {
	Query          string
	Specialization string
}

// Filter returns the records matching params, preserving input order.
func Filter(records []models.PhysicianRecord, params FilterParams) []models.PhysicianRecord {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	spec := strings.ToLower(strings.TrimSpace(params.Specialization))

	out := make([]models.PhysicianRecord, 0, len(records))
	for _, r := range records {
		if spec != "" && strings.ToLower(r.Specialization) != spec {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Specialization), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Specializations returns the distinct specializations present in records,
// sorted alphabetically.
func Specializations(records []models.PhysicianRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		if _, ok := seen[r.Specialization]; ok {
			continue
		}
		seen[r.Specialization] = struct{}{}
		out = append(out, r.Specialization)
	}
	sort.Strings(out)
	return out
}
