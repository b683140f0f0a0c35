package agent

import (
	"fmt"
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// composeSummary builds the executive summary from whichever fragments apply,
// joined with ". " and closed with a period. An interaction with no matching
// fragments still produces ".".
func composeSummary(transcript string, extracted *entities.ExtractedFields, timeline []entities.SentimentPoint, churnProb float64) string {
	parts := []string{}

	if extracted.ContactName != "" {
		parts = append(parts, fmt.Sprintf("Customer %s contacted support", extracted.ContactName))
	}

	if len(timeline) > 0 {
		parts = append(parts, fmt.Sprintf("with %s sentiment", timeline[0].Sentiment))
	}

	if extracted.Summary != "" {
		parts = append(parts, fmt.Sprintf("regarding: %s", clip(extracted.Summary, 100)))
	}

	if churnProb > churnCriticalThreshold {
		parts = append(parts, fmt.Sprintf("⚠️ CRITICAL: %.0f%% churn probability", churnProb))
	} else if churnProb > churnWarningThreshold {
		parts = append(parts, fmt.Sprintf("⚠️ WARNING: %.0f%% churn probability", churnProb))
	}

	lower := strings.ToLower(transcript)
	if strings.Contains(lower, "refund") {
		parts = append(parts, "Refund processed")
	}
	if strings.Contains(lower, "supervisor") {
		parts = append(parts, "escalated to supervisor")
	}

	return strings.Join(parts, ". ") + "."
}

// extractKeyPoints picks sentences that mention a key phrase and carry enough
// substance to stand alone. Scanning stops at the cap, not after collecting
// all candidates.
func extractKeyPoints(transcript string) []string {
	points := []string{}

	for _, sentence := range sentenceSplit.Split(transcript, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 30 {
			continue
		}
		if !containsAny(strings.ToLower(sentence), keyPointKeywords...) {
			continue
		}
		points = append(points, clip(sentence, 150))
		if len(points) >= maxKeyPoints {
			break
		}
	}

	return points
}
