// Package report persists the final tender report, the pipeline's sole
// durable output. Reports are stored as single JSON documents keyed by
// tender identifier for downstream consumers.
package report

import (
	"context"

	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// Store persists and retrieves tender reports. Implementations are
// stateless, performing I/O on each call without caching.
type Store interface {
	// Save persists a report, creating or overwriting as needed.
	Save(ctx context.Context, tenderID string, report *tender.TenderReport) error
	// Load retrieves the report for a tender identifier.
	Load(ctx context.Context, tenderID string) (*tender.TenderReport, error)
	// List returns the tender identifiers with a stored report.
	List(ctx context.Context) ([]string, error)
	// Delete removes a report. Missing identifiers are ignored.
	Delete(ctx context.Context, tenderID string) error
}
