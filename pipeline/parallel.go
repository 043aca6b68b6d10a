package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tailored-agentic-units/tenderaudit/progress"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

type indexedAudit struct {
	index int
	input auditInput
}

type indexedAnalysis struct {
	index    int
	analysis tender.ProposalAnalysis
}

// runAudits distributes proposal audits to a bounded worker pool and returns
// the analyses in proposal submission order. Workers complete out of order;
// the background collector keys results by index so the ordering guarantee
// holds regardless of which audit finishes first.
//
// There is no fail-fast mode: a failed audit contributes its marker analysis
// and every other proposal still gets a full audit.
func (p *Pipeline) runAudits(ctx context.Context, rc *RunContext, inputs []auditInput) []tender.ProposalAnalysis {
	if len(inputs) == 0 {
		return []tender.ProposalAnalysis{}
	}

	workerCount := min(p.cfg.MaxAudits(), len(inputs))

	workQueue := make(chan indexedAudit, len(inputs))
	resultChannel := make(chan indexedAnalysis, len(inputs))
	done := make(chan struct{})

	analyses := make([]tender.ProposalAnalysis, len(inputs))
	collected := make([]bool, len(inputs))

	go func() {
		for result := range resultChannel {
			analyses[result.index] = result.analysis
			collected[result.index] = true
		}
		close(done)
	}()

	var wg sync.WaitGroup
	var completed atomic.Int32

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case work, ok := <-workQueue:
					if !ok {
						return
					}

					analysis := p.safeAudit(ctx, rc, work.input)
					resultChannel <- indexedAnalysis{index: work.index, analysis: analysis}

					count := int(completed.Add(1))
					percent := percentAuditStart +
						(percentAuditEnd-percentAuditStart)*count/len(inputs)
					rc.emit(ctx, progress.TypeNodeComplete, percent,
						fmt.Sprintf("completed audit %d/%d: %s",
							count, len(inputs), work.input.Proposal.CompanyName),
						StageAudit)
				}
			}
		}()
	}

	for i, input := range inputs {
		workQueue <- indexedAudit{index: i, input: input}
	}
	close(workQueue)

	wg.Wait()
	close(resultChannel)
	<-done

	// Audits abandoned by cancellation still need their report slot filled.
	for i, ok := range collected {
		if !ok {
			reason := "the run was cancelled before this audit finished"
			if err := ctx.Err(); err != nil {
				reason = err.Error()
			}
			analyses[i] = failedAnalysis(inputs[i].Proposal.CompanyName, reason)
		}
	}

	return analyses
}

// safeAudit isolates one proposal audit so a panic inside it degrades into
// that proposal's marker analysis instead of taking down the whole run.
func (p *Pipeline) safeAudit(ctx context.Context, rc *RunContext, in auditInput) (analysis tender.ProposalAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("internal error: %v", r)
			rc.emit(ctx, progress.TypeError, percentAuditStart,
				fmt.Sprintf("audit of %s failed: %s", in.Proposal.CompanyName, reason),
				StageAudit)
			analysis = failedAnalysis(in.Proposal.CompanyName, reason)
		}
	}()
	return p.auditProposal(ctx, in)
}
