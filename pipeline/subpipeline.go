package pipeline

import (
	"context"
	"sync"

	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// auditInput pairs one proposal with the shared checklist. Inputs are built
// up front so the parallel executor stays a pure fan-out.
type auditInput struct {
	Proposal  tender.Proposal
	Checklist tender.MasterChecklist
}

func prepareAudits(checklist tender.MasterChecklist, proposals []tender.Proposal) []auditInput {
	inputs := make([]auditInput, len(proposals))
	for i, proposal := range proposals {
		inputs[i] = auditInput{Proposal: proposal, Checklist: checklist}
	}
	return inputs
}

// auditProposal runs the full audit of one proposal: evidence routing, then
// the three specialists concurrently, then the deterministic compile. The
// join is unconditional; a specialist contributes whatever findings it
// produced, and a specialist with no tasks contributes none.
func (p *Pipeline) auditProposal(ctx context.Context, in auditInput) tender.ProposalAnalysis {
	tasks, findings := p.routeProposal(ctx, in.Proposal, in.Checklist)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, rev := range reviewers {
		wg.Add(1)
		go func(rev reviewer) {
			defer wg.Done()
			out := p.reviewTasks(ctx, rev, tasks.byCategory(rev.category))
			mu.Lock()
			findings = append(findings, out...)
			mu.Unlock()
		}(rev)
	}
	wg.Wait()

	return compileAnalysis(in.Proposal.CompanyName, findings)
}

// failedAnalysis is the marker analysis for a proposal whose audit could not
// complete at all. Scores are zeroed and a single critical finding explains
// the failure, keeping one analysis per proposal in the final report.
func failedAnalysis(bidder, reason string) tender.ProposalAnalysis {
	findings := []tender.Finding{{
		Category:        tender.CategoryNone,
		AgentSource:     tender.SourceProjectManager,
		RequirementName: "Proposal audit",
		Severity:        tender.SeverityCritical,
		Observation:     "The audit of this proposal could not be completed: " + reason + ".",
		Recommendation:  "Re-run the analysis for this proposal; its scores are not meaningful.",
	}}
	return tender.ProposalAnalysis{
		BidderName:      bidder,
		Scores:          tender.Scores{},
		FindingsSummary: tender.Summarize(findings),
		Findings:        findings,
	}
}
