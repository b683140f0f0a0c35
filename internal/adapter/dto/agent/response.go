package agent

import (
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// QuickSummaryResponse is the condensed projection of a full analysis for
// list views and notifications.
type QuickSummaryResponse struct {
	Summary          string   `json:"summary"`
	RiskLevel        string   `json:"risk_level"`
	ChurnProbability float64  `json:"churn_probability"`
	KeyPoints        []string `json:"key_points"`
	UrgentActions    []string `json:"urgent_actions"`
}

// NewQuickSummaryResponse projects a full analysis down to its headline
// fields: the first three key points and only the urgent actions.
func NewQuickSummaryResponse(analysis *entities.AgentAnalysis) *QuickSummaryResponse {
	keyPoints := analysis.KeyPoints
	if len(keyPoints) > 3 {
		keyPoints = keyPoints[:3]
	}

	urgent := []string{}
	for _, action := range analysis.RecommendedActions {
		if strings.Contains(action, "Immediate") || strings.Contains(action, "🚨") {
			urgent = append(urgent, action)
		}
	}

	return &QuickSummaryResponse{
		Summary:          analysis.Summary,
		RiskLevel:        analysis.RiskLevel,
		ChurnProbability: analysis.ChurnProbability,
		KeyPoints:        keyPoints,
		UrgentActions:    urgent,
	}
}

// InteractionResponse is one row in the interaction history listing. The
// transcript itself is deliberately not echoed back.
type InteractionResponse struct {
	ID               string  `json:"id"`
	SourceType       string  `json:"source_type"`
	Context          string  `json:"context"`
	Summary          string  `json:"summary"`
	RiskLevel        string  `json:"risk_level"`
	ChurnProbability float64 `json:"churn_probability"`
	CreatedAt        string  `json:"created_at"`
}

// NewInteractionResponses converts stored interactions for the list endpoint
func NewInteractionResponses(interactions []*entities.Interaction) []InteractionResponse {
	responses := make([]InteractionResponse, 0, len(interactions))
	for _, interaction := range interactions {
		responses = append(responses, InteractionResponse{
			ID:               interaction.ID.String(),
			SourceType:       interaction.SourceType,
			Context:          interaction.Context,
			Summary:          interaction.Summary,
			RiskLevel:        interaction.RiskLevel,
			ChurnProbability: interaction.ChurnProbability,
			CreatedAt:        interaction.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return responses
}
