package pipeline

// Stage names attached to progress events.
const (
	StagePipeline  = "pipeline"
	StageChecklist = "create_master_checklist"
	StageAudit     = "parallel_audits"
	StageAggregate = "aggregate_results"
)

// Percent markers for the fixed stages. Proposal audits interpolate between
// percentAuditStart and percentAuditEnd as individual audits complete.
const (
	percentStart          = 5
	percentChecklistStart = 10
	percentChecklistDone  = 25
	percentAuditStart     = 30
	percentAuditEnd       = 85
	percentAggregate      = 90
	percentComplete       = 100
)
