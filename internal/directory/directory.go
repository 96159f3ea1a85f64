// Package directory supplies the physician directory the analysis service
// recommends from. Loading fails soft: any source failure degrades to the
// built-in fallback table so the application stays usable with no live data.
package directory

import (
	"context"
	"log/slog"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// Source produces physician records from a backing store (builtin table,
// CSV file, database). Implementations may return partial or malformed data;
// the Provider drops unusable records and falls back when nothing survives.
type Source interface {
	Load(ctx context.Context) ([]models.PhysicianRecord, error)
	Name() string
}

// Provider wraps a Source with the fail-soft contract.
type Provider struct {
	source Source
}

// NewProvider creates a Provider over the given source.
func NewProvider(source Source) *Provider {
	return &Provider{source: source}
}

// Load returns the validated physician directory. Records missing a name or
// specialization are dropped; a source error or an empty surviving set yields
// the built-in fallback directory instead of an error. Calling Load twice
// over unchanged data yields equal sequences.
func (p *Provider) Load(ctx context.Context) []models.PhysicianRecord {
	records, err := p.source.Load(ctx)
	if err != nil {
		slog.Warn("directory source failed, using fallback",
			"source", p.source.Name(),
			"error", err,
		)
		return Fallback()
	}

	usable := make([]models.PhysicianRecord, 0, len(records))
	for _, r := range records {
		if r.Usable() {
			usable = append(usable, r)
		}
	}
	if dropped := len(records) - len(usable); dropped > 0 {
		slog.Warn("dropped unusable directory records",
			"source", p.source.Name(),
			"dropped", dropped,
		)
	}

	if len(usable) == 0 {
		slog.Warn("directory source returned no usable records, using fallback",
			"source", p.source.Name(),
		)
		return Fallback()
	}

	return usable
}

// Name returns the underlying source identifier.
func (p *Provider) Name() string { return p.source.Name() }
