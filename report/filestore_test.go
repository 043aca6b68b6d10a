package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/tenderaudit/report"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

func sampleReport() *tender.TenderReport {
	return &tender.TenderReport{
		ExecutiveSummary: "Two bidders evaluated.",
		BudgetComparison: tender.EmptyBudgetComparison(),
		ProposalsAnalysis: []tender.ProposalAnalysis{{
			BidderName: "Constructora Andina",
			Scores:     tender.Scores{Legal: 100, Technical: 85, Financial: 70, ViabilityTotal: 85},
			Findings: []tender.Finding{{
				Category:        tender.CategoryTechnical,
				AgentSource:     tender.SourceTechnical,
				RequirementName: "Machinery fleet",
				Severity:        tender.SeverityWarning,
				Observation:     "Fleet list incomplete.",
			}},
			FindingsSummary: tender.FindingsSummary{Total: 1, Warning: 1},
		}},
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := report.NewFileStore(t.TempDir())
	ctx := context.Background()

	if err := store.Save(ctx, "tender-1", sampleReport()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "tender-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ExecutiveSummary != "Two bidders evaluated." {
		t.Errorf("got summary %q", loaded.ExecutiveSummary)
	}
	if len(loaded.ProposalsAnalysis) != 1 {
		t.Fatalf("Expected 1 analysis, got %d", len(loaded.ProposalsAnalysis))
	}
	if got := loaded.ProposalsAnalysis[0].Scores.ViabilityTotal; got != 85 {
		t.Errorf("got viability %d, want 85", got)
	}
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "reports")
	store := report.NewFileStore(root)

	if err := store.Save(context.Background(), "tender-1", sampleReport()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "tender-1.json")); err != nil {
		t.Errorf("Expected report file to exist: %v", err)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := report.NewFileStore(t.TempDir())

	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, report.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}
}

func TestFileStore_List(t *testing.T) {
	dir := t.TempDir()
	store := report.NewFileStore(dir)
	ctx := context.Background()

	for _, id := range []string{"tender-1", "tender-2"} {
		if err := store.Save(ctx, id, sampleReport()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	// Unrelated entries must not show up as report IDs.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 reports, got %v", ids)
	}
}

func TestFileStore_ListEmptyRoot(t *testing.T) {
	store := report.NewFileStore(filepath.Join(t.TempDir(), "never-created"))

	ids, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no reports, got %v", ids)
	}
}

func TestFileStore_Delete(t *testing.T) {
	store := report.NewFileStore(t.TempDir())
	ctx := context.Background()

	if err := store.Save(ctx, "tender-1", sampleReport()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "tender-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "tender-1"); !errors.Is(err, report.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got: %v", err)
	}

	// Deleting a missing report is not an error.
	if err := store.Delete(ctx, "tender-1"); err != nil {
		t.Fatalf("Repeat delete failed: %v", err)
	}
}
