package entities

// ExtractedFields is the flat record produced by the extraction gateway
// (LLM extraction or the regex fallback). Every field is optional: the
// analysis pipeline must tolerate a completely empty record.
type ExtractedFields struct {
	ContactName    string   `json:"contact_name,omitempty"`
	ContactEmail   string   `json:"contact_email,omitempty"`
	ContactPhone   string   `json:"contact_phone,omitempty"`
	ContactTitle   string   `json:"contact_title,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	CompanyWebsite string   `json:"company_website,omitempty"`
	DealTitle      string   `json:"deal_title,omitempty"`
	DealValue      float64  `json:"deal_value,omitempty"`
	NextStep       string   `json:"next_step,omitempty"`
	NextStepDate   string   `json:"next_step_date,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Sentiment      string   `json:"sentiment,omitempty"`
	Entities       []string `json:"entities,omitempty"`
}

// Source types accepted by the extraction gateway
const (
	SourceTypeCall      = "call"
	SourceTypeEmail     = "email"
	SourceTypeVoiceNote = "voice_note"
)
