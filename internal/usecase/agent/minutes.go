package agent

import (
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// extractMeetingMetadata derives a meeting title from the interaction context
// and the first recognized date in the transcript. The date stays in its
// original written form, never normalized.
func extractMeetingMetadata(transcript, analysisContext string) (title, date string) {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(transcript); match != "" {
			date = match
			break
		}
	}

	lower := strings.ToLower(transcript)
	switch {
	case analysisContext == entities.ContextCustomerService:
		if strings.Contains(lower, "supervisor") {
			title = "Customer Service Escalation Call"
		} else {
			title = "Customer Support Call"
		}
	case strings.Contains(lower, "meeting"):
		title = "Team Meeting"
	case strings.Contains(lower, "review"):
		title = "Review Session"
	default:
		title = "Business Discussion"
	}

	return title, date
}

func extractAttendees(contacts []entities.ContactRecord) []string {
	attendees := []string{}
	for _, contact := range contacts {
		if contact.Name != "" {
			attendees = append(attendees, contact.Name)
		}
	}
	return attendees
}

// extractDecisions collects decision phrasings as bulleted lines, deduplicated
// on the captured text.
func extractDecisions(transcript string) []string {
	decisions := []string{}
	seen := map[string]bool{}

	for _, pattern := range decisionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			decision := strings.TrimSpace(match[1])
			if len(decision) <= 15 || seen[decision] {
				continue
			}
			seen[decision] = true
			decisions = append(decisions, "• "+decision)
			if len(decisions) >= maxDecisions {
				return decisions
			}
		}
	}

	return decisions
}

// extractActionItems converts generated tasks into action items, then scans
// the transcript for additional phrasings, at most three per pattern.
func extractActionItems(transcript string, tasks []entities.TaskRecord) []entities.ActionItem {
	items := []entities.ActionItem{}

	for _, task := range tasks {
		items = append(items, entities.ActionItem{
			Action:   task.Title,
			Owner:    task.AssignedTo,
			DueDate:  task.DueDate,
			Priority: task.Priority,
			Status:   entities.ActionItemStatusPending,
		})
	}

	for _, pattern := range actionItemPatterns {
		matches := pattern.FindAllStringSubmatch(transcript, -1)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		for _, match := range matches {
			if len(items) >= maxActionItems {
				break
			}
			items = append(items, entities.ActionItem{
				Action:   strings.TrimSpace(match[1]),
				Owner:    entities.ActionItemOwnerTBD,
				DueDate:  "TBD",
				Priority: entities.TaskPriorityMedium,
				Status:   entities.ActionItemStatusPending,
			})
		}
	}

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}
	return items
}

// extractFollowUps lists follow-up commitments as bulleted lines. An extracted
// next step always leads the list.
func extractFollowUps(transcript string, extracted *entities.ExtractedFields) []string {
	followUps := []string{}
	seen := map[string]bool{}

	if extracted.NextStep != "" {
		seen[extracted.NextStep] = true
		followUps = append(followUps, "• "+extracted.NextStep)
	}

	for _, pattern := range followUpPatterns {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			item := strings.TrimSpace(match[1])
			if len(item) <= 15 || seen[item] {
				continue
			}
			seen[item] = true
			followUps = append(followUps, "• "+item)
			if len(followUps) >= maxFollowUps {
				return followUps
			}
		}
	}

	return followUps
}

// extractNextMeeting returns the first next-meeting mention, or "" when the
// transcript schedules nothing.
func extractNextMeeting(transcript string) string {
	for _, pattern := range nextMeetingPatterns {
		if match := pattern.FindStringSubmatch(transcript); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}
