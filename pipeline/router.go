package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/tender"
)

// taskSet groups the specialist tasks produced for one proposal.
type taskSet struct {
	Financial []tender.SpecialistTask
	Technical []tender.SpecialistTask
	Legal     []tender.SpecialistTask
}

func (ts *taskSet) byCategory(cat tender.Category) []tender.SpecialistTask {
	switch cat {
	case tender.CategoryFinancial:
		return ts.Financial
	case tender.CategoryTechnical:
		return ts.Technical
	case tender.CategoryLegal:
		return ts.Legal
	}
	return nil
}

func (ts *taskSet) add(cat tender.Category, task tender.SpecialistTask) {
	switch cat {
	case tender.CategoryFinancial:
		ts.Financial = append(ts.Financial, task)
	case tender.CategoryTechnical:
		ts.Technical = append(ts.Technical, task)
	case tender.CategoryLegal:
		ts.Legal = append(ts.Legal, task)
	}
}

type annexRef struct {
	RequirementName string `json:"requirementName"`
	AnnexFilename   string `json:"annexFilename"`
}

type annexMap struct {
	AnnexMap []annexRef `json:"annexMap"`
}

// routeProposal performs the per-proposal evidence routing: it validates the
// bidder's registration, maps each requirement to a delivered annex, and
// builds the specialist task sets. Requirements whose evidence is missing
// become omission findings instead of tasks.
func (p *Pipeline) routeProposal(ctx context.Context, proposal tender.Proposal, checklist tender.MasterChecklist) (taskSet, []tender.Finding) {
	findings := []tender.Finding{p.registrationFinding(ctx, proposal)}

	var tasks taskSet
	if !checklistUsable(checklist) {
		return tasks, findings
	}

	refs := p.mapAnnexes(ctx, proposal, checklist)

	attachments := make(map[string]string, len(proposal.Attachments))
	for name, text := range proposal.Attachments {
		attachments[normalizeFilename(name)] = text
	}

	for _, cat := range tender.Categories {
		for _, req := range checklist.ByCategory(cat) {
			mapped := refs[req.Name]
			evidence, ok := attachments[normalizeFilename(mapped)]
			if mapped == "" || !ok {
				findings = append(findings, omissionFinding(cat, req, mapped))
				continue
			}
			tasks.add(cat, tender.SpecialistTask{
				Requirement:  req,
				EvidenceText: evidence,
				MainFormText: proposal.MainFormText,
			})
		}
	}

	return tasks, findings
}

// registrationFinding dispatches the registry lookup through the tool
// registry and grades the outcome. Transient lookup failures are a WARNING;
// an unknown or inactive contributor is CRITICAL.
func (p *Pipeline) registrationFinding(ctx context.Context, proposal tender.Proposal) tender.Finding {
	finding := tender.Finding{
		Category:        tender.CategoryNone,
		AgentSource:     tender.SourceProjectManager,
		RequirementName: "Business registration",
	}

	id := strings.TrimSpace(proposal.RegistrationID)
	if id == "" {
		finding.Severity = tender.SeverityCritical
		finding.Observation = "The proposal does not declare a business registration identifier."
		finding.Recommendation = "Request the bidder's registration identifier before continuing the evaluation."
		return finding
	}

	args, _ := json.Marshal(map[string]string{"id": id})
	result, err := p.tools.Execute(ctx, registrationToolName, args)
	if err != nil {
		finding.Severity = tender.SeverityWarning
		finding.Observation = fmt.Sprintf("The registration check could not be completed: %v.", err)
		finding.Recommendation = "Verify the registration identifier manually against the contributor registry."
		return finding
	}

	var outcome registrationResult
	if err := json.Unmarshal([]byte(result.Content), &outcome); err != nil {
		finding.Severity = tender.SeverityWarning
		finding.Observation = fmt.Sprintf("The registration check returned an unreadable result: %v.", err)
		finding.Recommendation = "Verify the registration identifier manually against the contributor registry."
		return finding
	}

	switch outcome.Outcome {
	case registrationValid:
		finding.IsCompliant = true
		finding.Severity = tender.SeverityOK
		finding.Observation = fmt.Sprintf("The registry reports %q with status %q. Primary activity: %s.",
			outcome.Name, outcome.Status, outcome.PrimaryActivity)
		finding.Recommendation = "No action required."
	case registrationUnavailable:
		finding.Severity = tender.SeverityWarning
		finding.Observation = fmt.Sprintf("The registration check could not be completed: %s.", outcome.Detail)
		finding.Recommendation = "Verify the registration identifier manually against the contributor registry."
	default:
		finding.Severity = tender.SeverityCritical
		finding.Observation = fmt.Sprintf("The declared registration identifier %q is not valid: %s.", id, outcome.Detail)
		finding.Recommendation = "Exclude the proposal unless the bidder can demonstrate a valid, active registration."
	}
	return finding
}

// mapAnnexes asks the gateway which delivered annex covers each requirement.
// A failed mapping yields no references, which the caller turns into
// omission findings.
func (p *Pipeline) mapAnnexes(ctx context.Context, proposal tender.Proposal, checklist tender.MasterChecklist) map[string]string {
	names := make([]string, 0, checklist.Total())
	for _, req := range checklist.All() {
		names = append(names, req.Name)
	}
	delivered := make([]string, 0, len(proposal.Attachments))
	for filename := range proposal.Attachments {
		delivered = append(delivered, filename)
	}

	var user strings.Builder
	user.WriteString("REQUIREMENTS:\n")
	for _, name := range names {
		fmt.Fprintf(&user, "- %s\n", name)
	}
	user.WriteString("\nDELIVERED ANNEX FILES:\n")
	for _, filename := range delivered {
		fmt.Fprintf(&user, "- %s\n", filename)
	}
	user.WriteString("\nMAIN OFFER FORM:\n")
	user.WriteString(proposal.MainFormText)

	var mapped annexMap
	err := p.gateway.GenerateStructured(ctx, gateway.Prompt{
		System:      annexMapPrompt,
		User:        user.String(),
		Model:       p.cfg.Models.Mapping,
		Temperature: temperatureMapping,
	}, &mapped)
	if err != nil {
		return nil
	}

	refs := make(map[string]string, len(mapped.AnnexMap))
	for _, ref := range mapped.AnnexMap {
		refs[ref.RequirementName] = ref.AnnexFilename
	}
	return refs
}

func omissionFinding(cat tender.Category, req tender.Requirement, mapped string) tender.Finding {
	observation := "Documentation omission: the offer references no annex for this requirement and no delivered file covers it."
	if mapped != "" {
		observation = fmt.Sprintf("Documentation omission: the offer references annex %q for this requirement, but no such file was delivered.", mapped)
	}
	return tender.Finding{
		Category:           cat,
		AgentSource:        tender.SourceProjectManager,
		RequirementName:    req.Name,
		RequirementDetails: req.Details,
		Severity:           tender.SeverityCritical,
		Observation:        observation,
		Recommendation:     "Request the missing document from the bidder; the requirement cannot be verified without it.",
	}
}

// checklistUsable reports whether the checklist can drive evidence routing.
// A checklist with no requirements, or with unnamed requirements, routes
// nothing; the registration check still runs independently.
func checklistUsable(checklist tender.MasterChecklist) bool {
	if checklist.Empty() {
		return false
	}
	for _, req := range checklist.All() {
		if strings.TrimSpace(req.Name) == "" {
			return false
		}
	}
	return true
}

// normalizeFilename makes annex matching tolerant of the cosmetic
// differences between how the offer form cites a file and how it was
// delivered: case, the .pdf extension, and underscore or dash separators.
func normalizeFilename(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, ".pdf")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
