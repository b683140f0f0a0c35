package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callsight/callsight/internal/domain/entities"
)

func TestFallbackExtract_EmailOnly(t *testing.T) {
	extracted := fallbackExtract("reach me on bob@example.com anytime", entities.SourceTypeEmail)

	assert.Equal(t, "bob@example.com", extracted.ContactEmail)
	assert.Empty(t, extracted.ContactName)
}

func TestFallbackExtract_NameEmailPair(t *testing.T) {
	extracted := fallbackExtract("Spoke with Jane Doe (jane.doe@acme.com) this morning", entities.SourceTypeEmail)

	assert.Equal(t, "Jane Doe", extracted.ContactName)
	assert.Equal(t, "jane.doe@acme.com", extracted.ContactEmail)
}

func TestFallbackExtract_CompanyName(t *testing.T) {
	extracted := fallbackExtract("She works at Acme Corp. Great contact.", entities.SourceTypeEmail)

	assert.Equal(t, "Acme Corp", extracted.CompanyName)
}

func TestFallbackExtract_PhoneNormalizedToE164(t *testing.T) {
	extracted := fallbackExtract("call me back on (415) 555-2671 tomorrow", entities.SourceTypeEmail)

	assert.Equal(t, "+14155552671", extracted.ContactPhone)
}

func TestFallbackExtract_LargestAmountWins(t *testing.T) {
	extracted := fallbackExtract("deposit of $1,500 against a total of $12,000.50", entities.SourceTypeEmail)

	assert.Equal(t, 12000.50, extracted.DealValue)
	assert.Equal(t, "Potential Deal - $12,000", extracted.DealTitle)
}

func TestFallbackExtract_DealTitleUsesCompany(t *testing.T) {
	extracted := fallbackExtract("She works at Acme Corp. The quote came to $5,000.", entities.SourceTypeEmail)

	assert.Equal(t, "Acme Corp Deal - $5,000", extracted.DealTitle)
}

func TestFallbackExtract_NextStepJoinsActions(t *testing.T) {
	text := "Next step: send the contract\nWe will review the proposal together tomorrow"

	extracted := fallbackExtract(text, entities.SourceTypeEmail)

	assert.Equal(t, "send the contract; review the proposal together tomorrow", extracted.NextStep)
}

func TestFallbackExtract_CallSummaryPicksSubstantiveSentences(t *testing.T) {
	text := "Hello. We are looking for a new logistics vendor because our current contract expires in June. Bye."

	extracted := fallbackExtract(text, entities.SourceTypeCall)

	assert.Equal(t, "We are looking for a new logistics vendor because our current contract expires in June.", extracted.Summary)
}

func TestFallbackExtract_EmailSummaryIsPrefix(t *testing.T) {
	long := strings.Repeat("z", 180)

	extracted := fallbackExtract(long, entities.SourceTypeEmail)

	assert.Equal(t, strings.Repeat("z", 150)+"...", extracted.Summary)
}

func TestFallbackExtract_Sentiment(t *testing.T) {
	assert.Equal(t, entities.SentimentPositive,
		fallbackExtract("this is great, truly excellent work", entities.SourceTypeEmail).Sentiment)
	assert.Equal(t, entities.SentimentNegative,
		fallbackExtract("there is a problem and a concern", entities.SourceTypeEmail).Sentiment)
	assert.Equal(t, entities.SentimentNeutral,
		fallbackExtract("status update attached", entities.SourceTypeEmail).Sentiment)
}

func TestFallbackExtract_EmptyTextStillReturnsRecord(t *testing.T) {
	extracted := fallbackExtract("", entities.SourceTypeCall)

	assert.NotNil(t, extracted)
	assert.Equal(t, entities.SentimentNeutral, extracted.Sentiment)
	assert.Empty(t, extracted.ContactName)
	assert.Zero(t, extracted.DealValue)
}
