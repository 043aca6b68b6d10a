package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// reviewer parameterizes the one specialist implementation over the three
// disciplines. The three reviewers differ only in which score their findings
// attribute to and which prompt frames the verification.
type reviewer struct {
	category tender.Category
	source   tender.AgentSource
	prompt   string
}

var reviewers = []reviewer{
	{category: tender.CategoryFinancial, source: tender.SourceFinancial, prompt: financialReviewPrompt},
	{category: tender.CategoryTechnical, source: tender.SourceTechnical, prompt: technicalReviewPrompt},
	{category: tender.CategoryLegal, source: tender.SourceLegal, prompt: legalReviewPrompt},
}

// reviewTasks runs one specialist over its task list, producing exactly one
// finding per task. Tasks within a specialist run sequentially; only the
// three specialists themselves run concurrently. A failed generation becomes
// a CRITICAL finding on that requirement instead of aborting the audit.
func (p *Pipeline) reviewTasks(ctx context.Context, rev reviewer, tasks []tender.SpecialistTask) []tender.Finding {
	findings := make([]tender.Finding, 0, len(tasks))
	for _, task := range tasks {
		var finding tender.Finding
		err := p.gateway.GenerateStructured(ctx, gateway.Prompt{
			System:      rev.prompt,
			User:        reviewContext(task),
			Model:       p.cfg.Models.Review,
			Temperature: temperatureReview,
		}, &finding)
		if err == nil && !finding.Severity.Valid() {
			err = fmt.Errorf("unrecognized severity %q", finding.Severity)
		}
		if err != nil {
			finding = tender.Finding{
				Severity:       tender.SeverityCritical,
				Observation:    fmt.Sprintf("The automated review of this requirement failed: %v.", err),
				Recommendation: "Manual review required due to a system error.",
			}
		}

		// Identity fields are authoritative from the task, not the model.
		finding.Category = rev.category
		finding.AgentSource = rev.source
		finding.RequirementName = task.Requirement.Name
		finding.RequirementDetails = task.Requirement.Details
		findings = append(findings, finding)
	}
	return findings
}

func reviewContext(task tender.SpecialistTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "REQUIREMENT: %s\n%s\n", task.Requirement.Name, task.Requirement.Details)
	b.WriteString("\nMAIN OFFER FORM:\n")
	b.WriteString(task.MainFormText)
	b.WriteString("\n\nANNEX EVIDENCE:\n")
	b.WriteString(task.EvidenceText)
	return b.String()
}
