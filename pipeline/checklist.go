package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/progress"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// buildChecklist derives the master checklist from the tender text. An empty
// tender text is the caller's error; a failed generation is absorbed into an
// empty checklist so downstream stages still run (the registration check
// does not depend on the checklist).
func (p *Pipeline) buildChecklist(ctx context.Context, rc *RunContext, tenderText string) (tender.MasterChecklist, error) {
	if strings.TrimSpace(tenderText) == "" {
		return tender.MasterChecklist{}, ErrMissingTenderText
	}

	rc.emit(ctx, progress.TypeProgress, percentChecklistStart,
		"deriving master checklist from tender document", StageChecklist)

	var checklist tender.MasterChecklist
	err := p.gateway.GenerateStructured(ctx, gateway.Prompt{
		System:      checklistPrompt,
		User:        tenderText,
		Model:       p.cfg.Models.Checklist,
		Temperature: temperatureChecklist,
	}, &checklist)
	if err != nil {
		rc.emit(ctx, progress.TypeError, percentChecklistStart,
			fmt.Sprintf("checklist generation failed, continuing with empty checklist: %v", err),
			StageChecklist)
		return tender.MasterChecklist{}, nil
	}

	rc.emit(ctx, progress.TypeNodeComplete, percentChecklistDone,
		fmt.Sprintf("master checklist ready with %d requirements", checklist.Total()),
		StageChecklist)
	return checklist, nil
}
