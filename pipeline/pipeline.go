// Package pipeline implements the tender analysis run: checklist derivation
// from the tender document, bounded-concurrency proposal audits with evidence
// routing and three concurrent specialist reviewers, deterministic compilation
// of findings into scores, and cross-proposal aggregation into the final
// report.
//
// The pipeline initializes from configuration via New, creating all
// collaborators internally. Functional options allow test overrides of any
// collaborator.
//
//	p, err := pipeline.New(&cfg)
//	report, err := p.Run(ctx, pipeline.AnalysisInput{TenderText: text, Proposals: proposals})
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/progress"
	"github.com/tailored-agentic-units/tenderaudit/registry"
	"github.com/tailored-agentic-units/tenderaudit/report"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// AnalysisInput is everything one run needs: the tender document text and
// the proposals competing for it. TenderID is optional; Run assigns one when
// it is empty.
type AnalysisInput struct {
	TenderID   string
	TenderText string
	Proposals  []tender.Proposal
}

// Option configures a Pipeline after config-driven initialization.
// Applied by New before config-created defaults fill the gaps, so an
// override suppresses the default entirely.
type Option func(*Pipeline)

// WithGateway overrides the config-created generation gateway.
func WithGateway(g gateway.Gateway) Option {
	return func(p *Pipeline) { p.gateway = g }
}

// WithRegistry overrides the config-created registration lookup.
func WithRegistry(l registry.Lookup) Option {
	return func(p *Pipeline) { p.registry = l }
}

// WithEmitter overrides the config-resolved progress emitter.
func WithEmitter(e progress.Emitter) Option {
	return func(p *Pipeline) { p.emitter = e }
}

// WithReportStore overrides the config-created report store.
func WithReportStore(s report.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// Pipeline is the reusable analysis engine. A single Pipeline serves any
// number of concurrent Run calls; all per-run state lives in the RunContext.
type Pipeline struct {
	cfg      Config
	gateway  gateway.Gateway
	registry registry.Lookup
	tools    *gateway.ToolRegistry
	emitter  progress.Emitter
	store    report.Store
}

// New creates a Pipeline from configuration. Collaborators are initialized
// from their respective config sections unless an option already supplied
// them, so tests can inject fakes without needing gateway credentials.
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{cfg: *cfg}

	for _, opt := range opts {
		opt(p)
	}

	if p.gateway == nil {
		client, err := gateway.NewClient(&cfg.Gateway)
		if err != nil {
			return nil, fmt.Errorf("failed to create gateway client: %w", err)
		}
		p.gateway = client
	}

	if p.registry == nil {
		p.registry = registry.NewClient(&cfg.Registry)
	}

	if p.emitter == nil {
		name := cfg.Emitter
		if name == "" {
			name = "slog"
		}
		emitter, err := progress.GetEmitter(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve emitter: %w", err)
		}
		p.emitter = emitter
	}

	if p.store == nil && cfg.ReportPath != "" {
		p.store = report.NewFileStore(cfg.ReportPath)
	}

	p.tools = gateway.NewToolRegistry()
	if err := p.tools.Register(registrationTool(), registrationHandler(p.registry)); err != nil {
		return nil, fmt.Errorf("failed to register tool: %w", err)
	}

	return p, nil
}

// Run executes the full analysis and returns the report. The only fatal
// input error is an empty tender text; every downstream failure degrades
// into findings or fallback content so the report always materializes.
func (p *Pipeline) Run(ctx context.Context, input AnalysisInput) (*tender.TenderReport, error) {
	tenderID := input.TenderID
	if tenderID == "" {
		tenderID = uuid.New().String()
	}
	rc := &RunContext{TenderID: tenderID, Emitter: p.emitter}

	rc.emit(ctx, progress.TypeProgress, percentStart,
		fmt.Sprintf("starting analysis of %d proposals", len(input.Proposals)),
		StagePipeline)

	checklist, err := p.buildChecklist(ctx, rc, input.TenderText)
	if err != nil {
		rc.emit(ctx, progress.TypeError, percentStart, err.Error(), StagePipeline)
		return nil, err
	}

	analyses := p.runAudits(ctx, rc, prepareAudits(checklist, input.Proposals))
	summary := p.executiveSummary(ctx, rc, analyses)
	rep := buildReport(summary, analyses)

	if p.store != nil {
		if err := p.store.Save(ctx, tenderID, rep); err != nil {
			rc.emit(ctx, progress.TypeError, percentComplete,
				fmt.Sprintf("report persistence failed: %v", err), StagePipeline)
		}
	}

	rc.emit(ctx, progress.TypeComplete, percentComplete, "tender analysis complete", StagePipeline)
	return rep, nil
}

// TenderID pre-assigns an identifier for callers that need it before Run,
// e.g. to subscribe a progress listener.
func TenderID() string {
	return uuid.New().String()
}
