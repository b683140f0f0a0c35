package agent

// AnalyzeRequest is the payload for transcript analysis endpoints
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Context    string `json:"context" validate:"omitempty,oneof=customer_service sales support meeting"`
}

// ListInteractionsRequest captures query parameters for the history endpoint
type ListInteractionsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
