package entities

// DealRecord is a deal or transaction derived from a transcript. At most one
// is produced per analysis; it is carried in a list for extensibility.
type DealRecord struct {
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Stage  string  `json:"stage"`
	Status string  `json:"status"`
	Notes  string  `json:"notes"`
}

// Deal stages, first-match-wins classification order
const (
	DealStageCancelledRefunded = "Cancelled/Refunded"
	DealStageClosedWon         = "Closed Won"
	DealStageNegotiation       = "Negotiation"
	DealStageInProgress        = "In Progress"
)

// Deal statuses
const (
	DealStatusRefunded  = "Refunded"
	DealStatusCancelled = "Cancelled"
	DealStatusCompleted = "Completed"
	DealStatusActive    = "Active"
)
