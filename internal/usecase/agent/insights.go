package agent

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/callsight/callsight/internal/domain/entities"
)

// Deal value above which the opportunity insight fires.
const highValueDealThreshold = 1000.0

// generateInsights evaluates the three insight rules in fixed order: risk,
// sentiment, opportunity. Each rule appends at most one insight.
func generateInsights(extracted *entities.ExtractedFields, risks []string) []entities.Insight {
	insights := []entities.Insight{}

	if len(risks) > 0 {
		insights = append(insights, entities.Insight{
			Category:       entities.InsightCategoryRisk,
			Priority:       entities.InsightPriorityHigh,
			Title:          "⚠️ Critical Customer Issues Detected",
			Description:    fmt.Sprintf("%d risk factors identified requiring immediate attention", len(risks)),
			ActionRequired: true,
			SuggestedActions: []string{
				"Assign to senior account manager",
				"Schedule follow-up call within 24 hours",
				"Review service recovery procedures",
			},
		})
	}

	if extracted.Sentiment == entities.SentimentNegative {
		insights = append(insights, entities.Insight{
			Category:       entities.InsightCategorySentiment,
			Priority:       entities.InsightPriorityHigh,
			Title:          "😠 Negative Customer Experience",
			Description:    "Customer expressed significant dissatisfaction throughout interaction",
			ActionRequired: true,
			SuggestedActions: []string{
				"Send personalized apology from leadership",
				"Offer additional compensation",
				"Monitor for follow-up issues",
			},
		})
	}

	if extracted.DealValue > highValueDealThreshold {
		insights = append(insights, entities.Insight{
			Category:       entities.InsightCategoryOpportunity,
			Priority:       entities.InsightPriorityMedium,
			Title:          "💰 High-Value Customer",
			Description:    fmt.Sprintf("Customer has $%s transaction - worth retaining", humanize.Comma(int64(extracted.DealValue))),
			ActionRequired: true,
			SuggestedActions: []string{
				"Assign VIP status",
				"Provide premium support access",
				"Consider loyalty program enrollment",
			},
		})
	}

	return insights
}

// generateTasks derives follow-up tasks in fixed order: next step, retention,
// refund processing. Due dates are static labels, never computed timestamps.
func generateTasks(transcript string, extracted *entities.ExtractedFields, insights []entities.Insight) []entities.TaskRecord {
	tasks := []entities.TaskRecord{}

	if extracted.NextStep != "" {
		tasks = append(tasks, entities.TaskRecord{
			Title:       "Follow-up Action Required",
			Description: extracted.NextStep,
			Priority:    entities.TaskPriorityHigh,
			DueDate:     "2 days",
			AssignedTo:  "Account Manager",
		})
	}

	for _, insight := range insights {
		if insight.Category == entities.InsightCategoryRisk {
			tasks = append(tasks, entities.TaskRecord{
				Title:       "Customer Retention Action",
				Description: "High churn risk - immediate outreach required",
				Priority:    entities.TaskPriorityUrgent,
				DueDate:     "24 hours",
				AssignedTo:  "Senior Account Manager",
			})
			break
		}
	}

	if strings.Contains(strings.ToLower(transcript), "refund") {
		tasks = append(tasks, entities.TaskRecord{
			Title:       "Process Refund",
			Description: "Complete refund processing and confirm with customer",
			Priority:    entities.TaskPriorityHigh,
			DueDate:     "3 days",
			AssignedTo:  "Finance Team",
		})
	}

	return tasks
}

// generateRecommendedActions composes the action list: escalation actions for
// high/critical risk, compensation actions above the churn threshold, then
// the fixed housekeeping actions. Earliest entries survive the cap.
func generateRecommendedActions(riskLevel string, churnProb float64) []string {
	actions := []string{}

	if riskLevel == entities.RiskLevelCritical || riskLevel == entities.RiskLevelHigh {
		actions = append(actions,
			"🚨 Immediate: Assign to senior account manager",
			"📞 Schedule follow-up call within 24 hours",
		)
	}

	if churnProb > churnCompensation {
		actions = append(actions,
			"💰 Consider additional compensation/credits",
			"👥 Escalate to customer success team",
		)
	}

	actions = append(actions,
		"📧 Send personalized follow-up email",
		"📊 Monitor customer satisfaction metrics",
		"✅ Document issue in CRM with full context",
	)

	if len(actions) > maxRecommendedActions {
		actions = actions[:maxRecommendedActions]
	}
	return actions
}
