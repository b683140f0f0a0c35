package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsight/callsight/internal/domain/entities"
)

func TestComposeSummary_AllFragments(t *testing.T) {
	extracted := &entities.ExtractedFields{
		ContactName: "John Smith",
		Summary:     "delayed delivery complaint",
	}
	timeline := []entities.SentimentPoint{{Sentiment: entities.SentimentNegative}}

	summary := composeSummary("the refund was escalated to a supervisor", extracted, timeline, 75)

	assert.Equal(t,
		"Customer John Smith contacted support. with negative sentiment. "+
			"regarding: delayed delivery complaint. ⚠️ CRITICAL: 75% churn probability. "+
			"Refund processed. escalated to supervisor.",
		summary,
	)
}

func TestComposeSummary_WarningBand(t *testing.T) {
	summary := composeSummary("", &entities.ExtractedFields{}, nil, 55)

	assert.Equal(t, "⚠️ WARNING: 55% churn probability.", summary)
}

func TestComposeSummary_NoChurnWarningAtFifty(t *testing.T) {
	summary := composeSummary("", &entities.ExtractedFields{}, nil, 50)

	assert.Equal(t, ".", summary)
}

func TestComposeSummary_ClipsLongIssueDescription(t *testing.T) {
	extracted := &entities.ExtractedFields{Summary: strings.Repeat("a", 150)}

	summary := composeSummary("", extracted, nil, 0)

	assert.Equal(t, "regarding: "+strings.Repeat("a", 100)+".", summary)
}

func TestExtractKeyPoints_KeywordAndLengthFilter(t *testing.T) {
	transcript := "I want a refund. " +
		"The refund is needed because the delivery never arrived at my house! " +
		"Nothing else to say."

	points := extractKeyPoints(transcript)

	require.Len(t, points, 1)
	assert.Equal(t, "The refund is needed because the delivery never arrived at my house", points[0])
}

func TestExtractKeyPoints_ClipsAtOneFifty(t *testing.T) {
	sentence := "refund " + strings.Repeat("b", 160)

	points := extractKeyPoints(sentence)

	require.Len(t, points, 1)
	assert.Len(t, []rune(points[0]), 150)
}

func TestExtractKeyPoints_CapsAtFive(t *testing.T) {
	sentences := make([]string, 7)
	for i := range sentences {
		sentences[i] = "there is a problem with my account number " + strings.Repeat("x", 10)
	}

	points := extractKeyPoints(strings.Join(sentences, ". "))

	assert.Len(t, points, maxKeyPoints)
}
