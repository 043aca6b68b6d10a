package tender

// Scores holds the per-category compliance scores for one proposal, each in
// the 0-100 range, and their truncated average as the overall viability.
type Scores struct {
	Legal          int `json:"legal"`
	Technical      int `json:"technical"`
	Financial      int `json:"financial"`
	ViabilityTotal int `json:"viabilityTotal"`
}

// ProposalAnalysis is the terminal artifact of a single proposal's audit.
// Produced once by the proposal compiler; immutable afterward.
type ProposalAnalysis struct {
	BidderName      string          `json:"bidderName"`
	Scores          Scores          `json:"scores"`
	FindingsSummary FindingsSummary `json:"findingsSummary"`
	Findings        []Finding       `json:"findings"`
}

// BidderBudget is one bidder's row in the budget comparison table.
type BidderBudget struct {
	BidderName string             `json:"bidderName"`
	Values     map[string]float64 `json:"values"`
}

// BudgetComparison is a structural placeholder: real financial extraction is
// an explicit non-goal of this version, so both fields stay empty rather than
// carrying invented numbers.
type BudgetComparison struct {
	Categories []string       `json:"categories"`
	Bidders    []BidderBudget `json:"bidders"`
}

// EmptyBudgetComparison returns the placeholder with allocated, empty slices
// so the report marshals arrays instead of nulls.
func EmptyBudgetComparison() BudgetComparison {
	return BudgetComparison{
		Categories: []string{},
		Bidders:    []BidderBudget{},
	}
}

// TenderReport is the final artifact of the whole pipeline, written once.
// ProposalsAnalysis order matches the input proposal order regardless of
// audit completion order.
type TenderReport struct {
	ExecutiveSummary  string             `json:"executiveSummary"`
	BudgetComparison  BudgetComparison   `json:"budgetComparison"`
	ProposalsAnalysis []ProposalAnalysis `json:"proposalsAnalysis"`
}
