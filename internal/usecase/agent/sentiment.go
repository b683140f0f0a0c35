package agent

import (
	"fmt"
	"strings"

	"github.com/callsight/callsight/internal/domain/entities"
)

// analyzeSentimentTimeline walks transcript lines and emits sentiment change
// points. Blank lines are skipped, consecutive repeats are suppressed and the
// result is capped at maxTimelinePoints (later change points are dropped).
func analyzeSentimentTimeline(transcript string) []entities.SentimentPoint {
	timeline := make([]entities.SentimentPoint, 0, maxTimelinePoints)
	current := entities.SentimentNeutral

	for _, line := range strings.Split(transcript, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		sentiment, emoji := classifyLine(line)
		if sentiment == current {
			continue
		}
		current = sentiment

		if len(timeline) >= maxTimelinePoints {
			continue
		}
		timeline = append(timeline, entities.SentimentPoint{
			Stage:       fmt.Sprintf("Point %d", len(timeline)+1),
			Sentiment:   sentiment,
			Emoji:       emoji,
			Description: truncate(line, 100),
		})
	}

	return timeline
}

// classifyLine tests a line against the ordered sentiment rules.
func classifyLine(line string) (sentiment, emoji string) {
	lower := strings.ToLower(line)
	for _, rule := range sentimentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.sentiment, rule.emoji
			}
		}
	}
	return entities.SentimentNeutral, neutralEmoji
}
