package directory

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// CSVSource reads physician records from a header-addressed CSV file.
// Required columns: name, specialization, experience, contact. Optional
// columns: hospital, rating, availability, address, languages (semicolon
// separated), education. Rows missing required values are skipped.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV-backed source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) Load(_ context.Context) ([]models.PhysicianRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening directory file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing directory file: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("directory file %s has no data rows", s.path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "specialization"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("directory file %s missing column %q", s.path, required)
		}
	}

	records := make([]models.PhysicianRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.PhysicianRecord{
			Name:           field(row, col, "name"),
			Specialization: field(row, col, "specialization"),
			Experience:     field(row, col, "experience"),
			Contact:        field(row, col, "contact"),
		}
		rec.Hospital = optField(row, col, "hospital")
		rec.Availability = optField(row, col, "availability")
		rec.Address = optField(row, col, "address")
		rec.Education = optField(row, col, "education")
		if v := field(row, col, "rating"); v != "" {
			if rating, err := strconv.ParseFloat(v, 64); err == nil {
				rec.Rating = &rating
			}
		}
		if v := field(row, col, "languages"); v != "" {
			for _, lang := range strings.Split(v, ";") {
				if lang = strings.TrimSpace(lang); lang != "" {
					rec.Languages = append(rec.Languages, lang)
				}
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optField(row []string, col map[string]int, name string) *string {
	v := field(row, col, name)
	if v == "" {
		return nil
	}
	return &v
}

var _ Source = (*CSVSource)(nil)
