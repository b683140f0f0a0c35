package entities

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one analyzed conversation persisted for history views.
// The full AgentAnalysis is stored as JSONB alongside the headline fields.
type Interaction struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SourceType       string    `json:"source_type" gorm:"type:varchar(50);not null"`
	Context          string    `json:"context" gorm:"type:varchar(50);not null"`
	Transcript       string    `json:"transcript" gorm:"type:text;not null"`
	Summary          string    `json:"summary" gorm:"type:text"`
	RiskLevel        string    `json:"risk_level" gorm:"type:varchar(20)"`
	ChurnProbability float64   `json:"churn_probability"`
	Analysis         []byte    `json:"analysis,omitempty" gorm:"type:jsonb"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Interaction
func (Interaction) TableName() string {
	return "interactions"
}

// NewInteraction creates a new Interaction entity
func NewInteraction(sourceType, context, transcript string) *Interaction {
	return &Interaction{
		ID:         uuid.New(),
		SourceType: sourceType,
		Context:    context,
		Transcript: transcript,
	}
}

// Analysis contexts accepted by the agent endpoint
const (
	ContextCustomerService = "customer_service"
	ContextSales           = "sales"
	ContextSupport         = "support"
	ContextMeeting         = "meeting"
)
