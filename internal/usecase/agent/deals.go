package agent

import (
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// extractDeals derives at most one deal record; it fires only when the
// extracted fields carry a deal title or value.
func extractDeals(transcript string, extracted *entities.ExtractedFields) []entities.DealRecord {
	if extracted.DealTitle == "" && extracted.DealValue == 0 {
		return []entities.DealRecord{}
	}

	title := extracted.DealTitle
	if title == "" {
		title = "Transaction"
	}

	lower := strings.ToLower(transcript)
	return []entities.DealRecord{{
		Title:  title,
		Value:  extracted.DealValue,
		Stage:  classifyKeywords(lower, dealStageRules, entities.DealStageInProgress),
		Status: classifyKeywords(lower, dealStatusRules, entities.DealStatusActive),
		Notes:  extracted.Summary,
	}}
}

// classifyKeywords runs an ordered keyword-rule table, first match wins.
func classifyKeywords(lower string, rules []keywordRule, fallback string) string {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.value
			}
		}
	}
	return fallback
}
