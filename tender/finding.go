package tender

// Severity is the tri-level outcome classification that drives scoring.
type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Valid reports whether s is one of the three recognized severities.
// Anything else would be counted by neither the summary nor the scoring
// deductions, so consumers must reject it rather than carry it.
func (s Severity) Valid() bool {
	switch s {
	case SeverityOK, SeverityWarning, SeverityCritical:
		return true
	}
	return false
}

// AgentSource identifies which reviewer produced a finding. The project
// manager source covers findings the router records itself: the registration
// check and documentation omissions.
type AgentSource string

const (
	SourceProjectManager AgentSource = "Project Manager"
	SourceFinancial      AgentSource = "Financial"
	SourceTechnical      AgentSource = "Technical"
	SourceLegal          AgentSource = "Legal"
)

// Finding is one compliance verdict on one requirement for one proposal.
//
// It is a single tagged record rather than a family of per-specialist types:
// Category discriminates which optional fields are meaningful. Financial and
// technical findings use DeclaredValue/FoundInAnnexValue; legal findings use
// DeclaredCompliance/AnnexEvidenceSummary. Category also decides which score
// a deduction lands on: project-manager omission findings carry the owning
// requirement's category so the gap penalizes that discipline, while the
// registration finding carries CategoryNone and never affects a score.
//
// Findings are append-only within a proposal audit and never mutated after
// creation.
type Finding struct {
	Category           Category    `json:"category,omitempty"`
	AgentSource        AgentSource `json:"agentSource"`
	RequirementName    string      `json:"requirementName"`
	RequirementDetails string      `json:"requirementDetails,omitempty"`
	IsCompliant        bool        `json:"isCompliant"`
	Severity           Severity    `json:"severity"`
	Observation        string      `json:"observation"`
	Recommendation     string      `json:"recommendation"`

	DeclaredValue     string `json:"declaredValue,omitempty"`
	FoundInAnnexValue string `json:"foundInAnnexValue,omitempty"`

	DeclaredCompliance   string `json:"declaredCompliance,omitempty"`
	AnnexEvidenceSummary string `json:"annexEvidenceSummary,omitempty"`

	IsConsistent bool `json:"isConsistent"`
}

// FindingsSummary counts a proposal's findings by severity.
type FindingsSummary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	OK       int `json:"ok"`
}

// Summarize tallies findings by severity.
func Summarize(findings []Finding) FindingsSummary {
	s := FindingsSummary{Total: len(findings)}
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityWarning:
			s.Warning++
		case SeverityOK:
			s.OK++
		}
	}
	return s
}
