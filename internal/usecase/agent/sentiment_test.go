package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsight/callsight/internal/domain/entities"
)

func TestAnalyzeSentimentTimeline_EmitsOnChangeOnly(t *testing.T) {
	transcript := strings.Join([]string{
		"Customer: This is unacceptable, my order never arrived!",
		"Customer: I am really angry about this whole situation.",
		"Agent: I apologize for the inconvenience, let me look into it.",
		"Customer: Thank you, I appreciate the quick response.",
	}, "\n")

	timeline := analyzeSentimentTimeline(transcript)

	require.Len(t, timeline, 3)
	assert.Equal(t, entities.SentimentNegative, timeline[0].Sentiment)
	assert.Equal(t, "😠", timeline[0].Emoji)
	assert.Equal(t, "Point 1", timeline[0].Stage)
	assert.Equal(t, entities.SentimentEmpathetic, timeline[1].Sentiment)
	assert.Equal(t, "🤝", timeline[1].Emoji)
	assert.Equal(t, entities.SentimentPositive, timeline[2].Sentiment)
	assert.Equal(t, "😊", timeline[2].Emoji)
	assert.Equal(t, "Point 3", timeline[2].Stage)
}

func TestAnalyzeSentimentTimeline_RuleOrderWinsWithinLine(t *testing.T) {
	// Negative keywords beat positive ones on the same line.
	timeline := analyzeSentimentTimeline("I am angry but thank you anyway")

	require.Len(t, timeline, 1)
	assert.Equal(t, entities.SentimentNegative, timeline[0].Sentiment)
}

func TestAnalyzeSentimentTimeline_SkipsBlankLines(t *testing.T) {
	timeline := analyzeSentimentTimeline("I am so upset\n\n   \nthank you so much")

	require.Len(t, timeline, 2)
	assert.Equal(t, entities.SentimentNegative, timeline[0].Sentiment)
	assert.Equal(t, entities.SentimentPositive, timeline[1].Sentiment)
}

func TestAnalyzeSentimentTimeline_NeutralTranscriptHasNoPoints(t *testing.T) {
	timeline := analyzeSentimentTimeline("I would like to check on my order\nIt was placed last week")

	assert.Empty(t, timeline)
}

func TestAnalyzeSentimentTimeline_CapsAtFivePoints(t *testing.T) {
	lines := []string{}
	for i := 0; i < 4; i++ {
		lines = append(lines, "this is terrible", "thank you so much")
	}
	timeline := analyzeSentimentTimeline(strings.Join(lines, "\n"))

	require.Len(t, timeline, maxTimelinePoints)
	assert.Equal(t, "Point 5", timeline[4].Stage)
}

func TestAnalyzeSentimentTimeline_TruncatesLongDescriptions(t *testing.T) {
	line := "angry " + strings.Repeat("x", 120)
	timeline := analyzeSentimentTimeline(line)

	require.Len(t, timeline, 1)
	assert.Len(t, []rune(timeline[0].Description), 103)
	assert.True(t, strings.HasSuffix(timeline[0].Description, "..."))
}
