package tender

// Proposal is one bidder's submission: the main form text plus the extracted
// text of every attachment, keyed by filename. Supplied externally per bidder
// and treated as immutable input by the audit sub-pipeline.
type Proposal struct {
	CompanyName    string            `json:"companyName"`
	RegistrationID string            `json:"registrationId,omitempty"`
	MainFormText   string            `json:"mainFormText"`
	Attachments    map[string]string `json:"attachments"`
}

// SpecialistTask is the surgical package the router hands to one specialist:
// a single requirement paired with the evidence document resolved for it and
// the main form text for context. Consumed by exactly one review call.
type SpecialistTask struct {
	Requirement  Requirement `json:"requirement"`
	EvidenceText string      `json:"evidenceText"`
	MainFormText string      `json:"mainFormText"`
}
