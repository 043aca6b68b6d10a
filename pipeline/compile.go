package pipeline

import (
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

const (
	baseScore         = 100
	deductionCritical = 15
	deductionWarning  = 5
)

// compileAnalysis deterministically folds a proposal's findings into its
// analysis record. Deductions land on the score of the finding's category,
// so an omission recorded by the router penalizes the discipline that owns
// the missing requirement; CategoryNone findings count in the summary but
// never move a score.
func compileAnalysis(bidder string, findings []tender.Finding) tender.ProposalAnalysis {
	deductions := map[tender.Category]int{}
	for _, f := range findings {
		if f.Category == tender.CategoryNone {
			continue
		}
		switch f.Severity {
		case tender.SeverityCritical:
			deductions[f.Category] += deductionCritical
		case tender.SeverityWarning:
			deductions[f.Category] += deductionWarning
		}
	}

	scores := tender.Scores{
		Legal:     categoryScore(deductions, tender.CategoryLegal),
		Technical: categoryScore(deductions, tender.CategoryTechnical),
		Financial: categoryScore(deductions, tender.CategoryFinancial),
	}
	scores.ViabilityTotal = (scores.Legal + scores.Technical + scores.Financial) / 3

	return tender.ProposalAnalysis{
		BidderName:      bidder,
		Scores:          scores,
		FindingsSummary: tender.Summarize(findings),
		Findings:        findings,
	}
}

func categoryScore(deductions map[tender.Category]int, cat tender.Category) int {
	score := baseScore - deductions[cat]
	if score < 0 {
		return 0
	}
	return score
}
