package tender_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/tenderaudit/tender"
)

func sampleChecklist() tender.MasterChecklist {
	return tender.MasterChecklist{
		Financial: []tender.Requirement{{Name: "Bank solvency certificate"}},
		Technical: []tender.Requirement{{Name: "Machinery fleet"}, {Name: "Site engineer"}},
		Legal:     []tender.Requirement{{Name: "Registration certificate"}},
	}
}

func TestMasterChecklist_ByCategory(t *testing.T) {
	checklist := sampleChecklist()

	if got := len(checklist.ByCategory(tender.CategoryTechnical)); got != 2 {
		t.Errorf("got %d technical requirements, want 2", got)
	}
	if got := checklist.ByCategory(tender.CategoryNone); got != nil {
		t.Errorf("Expected nil for CategoryNone, got %v", got)
	}
}

func TestMasterChecklist_All(t *testing.T) {
	checklist := sampleChecklist()

	all := checklist.All()
	if len(all) != 4 {
		t.Fatalf("got %d requirements, want 4", len(all))
	}
	if all[0].Name != "Bank solvency certificate" {
		t.Errorf("Expected financial requirements first, got %q", all[0].Name)
	}

	if checklist.Total() != 4 {
		t.Errorf("got total %d, want 4", checklist.Total())
	}
	if checklist.Empty() {
		t.Error("Expected non-empty checklist")
	}
	if !(tender.MasterChecklist{}).Empty() {
		t.Error("Expected zero checklist to be empty")
	}
}

func TestMasterChecklist_JSONShape(t *testing.T) {
	data := `{
		"financialRequirements": [{"name": "Solvency", "details": "Certificate"}],
		"technicalRequirements": [],
		"legalRequirements": [{"name": "RUC", "details": "Active registration"}]
	}`

	var checklist tender.MasterChecklist
	if err := json.Unmarshal([]byte(data), &checklist); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(checklist.Financial) != 1 || checklist.Financial[0].Name != "Solvency" {
		t.Errorf("got financial %+v", checklist.Financial)
	}
	if len(checklist.Legal) != 1 {
		t.Errorf("got legal %+v", checklist.Legal)
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []tender.Severity{tender.SeverityOK, tender.SeverityWarning, tender.SeverityCritical} {
		if !s.Valid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	for _, s := range []tender.Severity{"", "Critical", "ok", "FATAL"} {
		if s.Valid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

func TestSummarize(t *testing.T) {
	findings := []tender.Finding{
		{Severity: tender.SeverityCritical},
		{Severity: tender.SeverityCritical},
		{Severity: tender.SeverityWarning},
		{Severity: tender.SeverityOK},
	}

	summary := tender.Summarize(findings)

	if summary.Total != 4 {
		t.Errorf("got total %d, want 4", summary.Total)
	}
	if summary.Critical != 2 || summary.Warning != 1 || summary.OK != 1 {
		t.Errorf("got summary %+v", summary)
	}
}

func TestEmptyBudgetComparison_MarshalsArrays(t *testing.T) {
	data, err := json.Marshal(tender.EmptyBudgetComparison())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	out := string(data)
	if strings.Contains(out, "null") {
		t.Errorf("Placeholder must marshal empty arrays, got %s", out)
	}
}

func TestFinding_OmitsUnusedOptionalFields(t *testing.T) {
	finding := tender.Finding{
		Category:        tender.CategoryLegal,
		AgentSource:     tender.SourceLegal,
		RequirementName: "Registration certificate",
		IsCompliant:     true,
		Severity:        tender.SeverityOK,
		Observation:     "Valid certificate.",
	}

	data, err := json.Marshal(finding)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	out := string(data)
	for _, field := range []string{"declaredValue", "foundInAnnexValue", "declaredCompliance", "annexEvidenceSummary"} {
		if strings.Contains(out, field) {
			t.Errorf("Expected %s to be omitted, got %s", field, out)
		}
	}
}
