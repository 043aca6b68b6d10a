// Package tender defines the data model shared across the audit pipeline:
// requirements extracted from a tender document, bidder proposals, specialist
// tasks and findings, and the per-proposal and tender-level report shapes.
//
// All records are plain values. Each proposal audit owns its findings slice
// exclusively until it returns, so nothing in this package needs locking.
package tender

// Category identifies which specialist discipline a requirement or finding
// belongs to. The zero value (CategoryNone) marks findings that inform the
// report without affecting any category score, such as the registration check.
type Category string

const (
	CategoryNone      Category = ""
	CategoryFinancial Category = "financial"
	CategoryTechnical Category = "technical"
	CategoryLegal     Category = "legal"
)

// Categories lists the three scored disciplines in report order.
var Categories = []Category{CategoryFinancial, CategoryTechnical, CategoryLegal}

// Requirement is one discrete obligation extracted from the tender document.
// Name is the join key to the evidence mapping and must be used as-is: the
// checklist generator gives no normalization guarantees.
type Requirement struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// MasterChecklist is the categorized set of all requirements for a tender,
// produced once by the checklist builder and read-only afterward. Every
// extracted requirement appears in exactly one list.
type MasterChecklist struct {
	Financial []Requirement `json:"financialRequirements"`
	Technical []Requirement `json:"technicalRequirements"`
	Legal     []Requirement `json:"legalRequirements"`
}

// ByCategory returns the requirement list for a scored category.
// CategoryNone returns nil.
func (c MasterChecklist) ByCategory(cat Category) []Requirement {
	switch cat {
	case CategoryFinancial:
		return c.Financial
	case CategoryTechnical:
		return c.Technical
	case CategoryLegal:
		return c.Legal
	}
	return nil
}

// All returns the requirements of all three categories in category order.
func (c MasterChecklist) All() []Requirement {
	all := make([]Requirement, 0, c.Total())
	all = append(all, c.Financial...)
	all = append(all, c.Technical...)
	all = append(all, c.Legal...)
	return all
}

// Total returns the number of requirements across all categories.
func (c MasterChecklist) Total() int {
	return len(c.Financial) + len(c.Technical) + len(c.Legal)
}

// Empty reports whether the checklist carries no requirements at all,
// which is also the degraded shape produced when checklist generation fails.
func (c MasterChecklist) Empty() bool {
	return c.Total() == 0
}
