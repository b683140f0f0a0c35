package agent

import (
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// detectRisks scans the transcript for business-risk markers. The rules are
// independent: any subset may fire, in this fixed order. The extracted fields
// are accepted for future rule extension but unused today.
func detectRisks(transcript string, _ *entities.ExtractedFields) []string {
	risks := []string{}
	lower := strings.ToLower(transcript)

	if containsAny(lower, "cancel", "refund", "never again", "worst") {
		risks = append(risks, "Customer churn risk detected")
	}

	if strings.Contains(lower, "supervisor") || strings.Contains(lower, "manager") {
		risks = append(risks, "Issue escalated to management")
	}

	if strings.Count(lower, "unacceptable") > 2 || strings.Count(lower, "ridiculous") > 2 {
		risks = append(risks, "High negative sentiment - immediate action required")
	}

	if strings.Contains(lower, "cancel") && (strings.Contains(lower, "flight") || strings.Contains(lower, "booking")) {
		risks = append(risks, "Service disruption - customer compensation may be needed")
	}

	return risks
}

// calculateChurnProbability scores churn likelihood on [0,100] from a neutral
// baseline, combining substring-count penalties, fixed relief terms and the
// negative points of the sentiment timeline.
func calculateChurnProbability(transcript string, timeline []entities.SentimentPoint) float64 {
	score := churnBaseline
	lower := strings.ToLower(transcript)

	for _, p := range churnPenalties {
		score += float64(strings.Count(lower, p.keyword)) * p.weight
	}

	// Compensation offered but declined
	if strings.Contains(lower, "voucher") && strings.Contains(lower, "don't want") {
		score += churnVoucherDeclined
	}

	if strings.Contains(lower, "thank") {
		score -= churnGratitudeRelief
	}
	if strings.Contains(lower, "appreciate") {
		score -= churnGratitudeRelief
	}
	if strings.Contains(lower, "resolve") || strings.Contains(lower, "fixed") {
		score -= churnResolutionRelief
	}

	for _, point := range timeline {
		if point.Sentiment == entities.SentimentNegative {
			score += churnNegativePointDelta
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// determineRiskLevel maps (churn score, risk count) onto a discrete level.
// The ladder is first-match-wins with strict greater-than churn bounds.
func determineRiskLevel(churnProb float64, riskCount int) string {
	switch {
	case churnProb > churnCriticalThreshold || riskCount >= 3:
		return entities.RiskLevelCritical
	case churnProb > churnWarningThreshold || riskCount >= 2:
		return entities.RiskLevelHigh
	case churnProb > churnMediumThreshold || riskCount >= 1:
		return entities.RiskLevelMedium
	default:
		return entities.RiskLevelLow
	}
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
