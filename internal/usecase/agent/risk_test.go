package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsight/callsight/internal/domain/entities"
)

func TestDetectRisks_AllRulesCanFire(t *testing.T) {
	transcript := "I want to cancel my flight booking. Get me a supervisor. " +
		strings.Repeat("This is unacceptable. ", 3)

	risks := detectRisks(transcript, &entities.ExtractedFields{})

	require.Len(t, risks, 4)
	assert.Equal(t, "Customer churn risk detected", risks[0])
	assert.Equal(t, "Issue escalated to management", risks[1])
	assert.Equal(t, "High negative sentiment - immediate action required", risks[2])
	assert.Equal(t, "Service disruption - customer compensation may be needed", risks[3])
}

func TestDetectRisks_NegativeSentimentNeedsMoreThanTwoMentions(t *testing.T) {
	two := detectRisks("unacceptable, simply unacceptable", &entities.ExtractedFields{})
	three := detectRisks("unacceptable unacceptable unacceptable", &entities.ExtractedFields{})

	assert.NotContains(t, two, "High negative sentiment - immediate action required")
	assert.Contains(t, three, "High negative sentiment - immediate action required")
}

func TestDetectRisks_CleanTranscript(t *testing.T) {
	risks := detectRisks("Order shipped on time, customer happy", &entities.ExtractedFields{})

	assert.Empty(t, risks)
}

func TestCalculateChurnProbability_Baseline(t *testing.T) {
	assert.Equal(t, 50.0, calculateChurnProbability("", nil))
	assert.Equal(t, 50.0, calculateChurnProbability("checking in on my order", nil))
}

func TestCalculateChurnProbability_CountsEveryOccurrence(t *testing.T) {
	// 50 + 2*10 (cancel) + 8 (refund) = 78
	got := calculateChurnProbability("cancel it now, yes cancel, and refund me", nil)
	assert.Equal(t, 78.0, got)
}

func TestCalculateChurnProbability_SubstringMatching(t *testing.T) {
	// "cancellation" contains "cancel": 50 + 10 = 60
	got := calculateChurnProbability("I am considering a cancellation", nil)
	assert.Equal(t, 60.0, got)
}

func TestCalculateChurnProbability_ReliefTerms(t *testing.T) {
	// 50 - 5 (thank) - 5 (appreciate) - 10 (resolve) = 30
	got := calculateChurnProbability("thank you, I appreciate that it got resolved", nil)
	assert.Equal(t, 30.0, got)
}

func TestCalculateChurnProbability_VoucherDeclined(t *testing.T) {
	// 50 + 15 = 65
	got := calculateChurnProbability("I don't want your voucher", nil)
	assert.Equal(t, 65.0, got)
}

func TestCalculateChurnProbability_NegativeTimelinePoints(t *testing.T) {
	timeline := []entities.SentimentPoint{
		{Sentiment: entities.SentimentNegative},
		{Sentiment: entities.SentimentPositive},
		{Sentiment: entities.SentimentNegative},
	}
	// 50 + 2*8 = 66
	got := calculateChurnProbability("", timeline)
	assert.Equal(t, 66.0, got)
}

func TestCalculateChurnProbability_ClampedToHundred(t *testing.T) {
	got := calculateChurnProbability(strings.Repeat("cancel ", 10), nil)
	assert.Equal(t, 100.0, got)
}

func TestDetermineRiskLevel_Ladder(t *testing.T) {
	tests := []struct {
		name      string
		churnProb float64
		riskCount int
		want      string
	}{
		{"critical by churn", 71, 0, entities.RiskLevelCritical},
		{"critical by risk count", 0, 3, entities.RiskLevelCritical},
		{"seventy is not critical", 70, 0, entities.RiskLevelHigh},
		{"high by churn", 55, 0, entities.RiskLevelHigh},
		{"high by risk count", 0, 2, entities.RiskLevelHigh},
		{"fifty is not high", 50, 0, entities.RiskLevelMedium},
		{"medium by churn", 31, 0, entities.RiskLevelMedium},
		{"medium by single risk", 0, 1, entities.RiskLevelMedium},
		{"thirty is not medium", 30, 0, entities.RiskLevelLow},
		{"low", 10, 0, entities.RiskLevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineRiskLevel(tt.churnProb, tt.riskCount))
		})
	}
}

func TestEmptyTranscriptLandsOnMediumRisk(t *testing.T) {
	// Neutral baseline of 50 sits above the medium threshold.
	churn := calculateChurnProbability("", nil)
	assert.Equal(t, entities.RiskLevelMedium, determineRiskLevel(churn, 0))
}
