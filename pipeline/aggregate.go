package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/progress"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// summaryFallback replaces the executive summary when its generation fails.
// The report is still complete and deterministic without it.
const summaryFallback = "The automated analysis completed, but the executive summary could not be generated. Review the per-proposal scores and findings below to compare bidders."

// executiveSummary condenses every proposal's outcome into a digest and asks
// the gateway for a comparative narrative. Only viability scores and
// critical observations reach the digest; full findings stay in the report.
func (p *Pipeline) executiveSummary(ctx context.Context, rc *RunContext, analyses []tender.ProposalAnalysis) string {
	rc.emit(ctx, progress.TypeProgress, percentAggregate,
		fmt.Sprintf("aggregating results across %d proposals", len(analyses)),
		StageAggregate)

	if len(analyses) == 0 {
		return "No proposals were submitted for this tender."
	}

	text, err := p.gateway.GenerateText(ctx, gateway.Prompt{
		System:      aggregatePrompt,
		User:        summaryDigest(analyses),
		Model:       p.cfg.Models.Summary,
		Temperature: temperatureSummary,
	})
	if err != nil {
		rc.emit(ctx, progress.TypeError, percentAggregate,
			fmt.Sprintf("executive summary generation failed, using fallback: %v", err),
			StageAggregate)
		return summaryFallback
	}
	return text
}

func summaryDigest(analyses []tender.ProposalAnalysis) string {
	var b strings.Builder
	for _, a := range analyses {
		fmt.Fprintf(&b, "BIDDER: %s\n", a.BidderName)
		fmt.Fprintf(&b, "Viability: %d/100 (legal %d, technical %d, financial %d)\n",
			a.Scores.ViabilityTotal, a.Scores.Legal, a.Scores.Technical, a.Scores.Financial)
		fmt.Fprintf(&b, "Findings: %d total, %d critical, %d warnings\n",
			a.FindingsSummary.Total, a.FindingsSummary.Critical, a.FindingsSummary.Warning)
		for _, f := range a.Findings {
			if f.Severity == tender.SeverityCritical {
				fmt.Fprintf(&b, "CRITICAL (%s): %s\n", f.RequirementName, f.Observation)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// buildReport assembles the final artifact. The budget comparison is an
// empty placeholder: its extraction is not implemented yet, and the shape is
// emitted so report consumers can already bind to it.
func buildReport(summary string, analyses []tender.ProposalAnalysis) *tender.TenderReport {
	return &tender.TenderReport{
		ExecutiveSummary:  summary,
		BudgetComparison:  tender.EmptyBudgetComparison(),
		ProposalsAnalysis: analyses,
	}
}
