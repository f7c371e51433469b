// Package seed defines where the engine's input snapshots come from. The tax
// engine itself never depends on a provider; commands fetch a Snapshot and pass
// its slices in.
package seed

import (
	"fjacquet/ngtax/internal/models"
)

// Snapshot is one consistent view of the caller's data.
type Snapshot struct {
	Transactions []models.Transaction     `json:"transactions" yaml:"transactions"`
	Filings      []models.FilingRecord    `json:"filings" yaml:"filings"`
	Business     *models.BusinessTaxInfo `json:"business,omitempty" yaml:"business,omitempty"`
}

// Provider supplies snapshots.
type Provider interface {
	Snapshot() (Snapshot, error)
}

// StaticProvider returns the same snapshot on every call.
type StaticProvider struct {
	Data Snapshot
}

// Snapshot returns p.Data.
func (p StaticProvider) Snapshot() (Snapshot, error) {
	return p.Data, nil
}
