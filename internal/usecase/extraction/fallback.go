package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nyaruka/phonenumbers"

	"github.com/callsight/callsight/internal/domain/entities"
)

// Fallback extraction patterns. These run whenever the LLM path is
// unavailable, so they stay deliberately conservative: a missed field is
// better than an invented one.
var (
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	nameEmailPattern = regexp.MustCompile(`(?i)([A-Z][a-z]+ [A-Z][a-z]+)[,\s]*\(?([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})\)?`)
	companyPattern   = regexp.MustCompile(`at ([A-Z][A-Za-z0-9\s]+(?:Corp|Inc|LLC|Ltd|Limited)?)`)
	phonePattern     = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	moneyPattern     = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

	fallbackActionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:next step|action item|to-do|follow[- ]up):\s*([^\n.]+)`),
		regexp.MustCompile(`(?i)(?:will|need to|should)\s+([^\n.]{10,80})`),
	}

	fallbackSentenceSplit = regexp.MustCompile(`[.!?]+`)

	callSummaryKeywords = []string{"need", "want", "budget", "timeline", "looking for", "interested"}

	positiveWords = []string{"great", "excellent", "perfect", "looking forward", "excited", "interested"}
	negativeWords = []string{"concern", "worried", "problem", "issue", "unfortunately", "difficult"}
)

// fallbackExtract runs the rule-based extraction path. It never fails; text
// with nothing recognizable yields a record with only summary and sentiment.
func fallbackExtract(text, sourceType string) *entities.ExtractedFields {
	extracted := &entities.ExtractedFields{}

	if emails := emailPattern.FindAllString(text, -1); len(emails) > 0 {
		extracted.ContactEmail = emails[0]
	}

	// "Jane Doe (jane@example.com)" pairs beat a bare email address.
	if match := nameEmailPattern.FindStringSubmatch(text); match != nil {
		extracted.ContactName = strings.TrimSpace(match[1])
		extracted.ContactEmail = match[2]
	}

	if match := companyPattern.FindStringSubmatch(text); match != nil {
		extracted.CompanyName = strings.TrimSpace(match[1])
	}

	if phone := phonePattern.FindString(text); phone != "" {
		extracted.ContactPhone = normalizePhone(phone)
	}

	if value, ok := largestAmount(text); ok {
		extracted.DealValue = value
		company := extracted.CompanyName
		if company == "" {
			company = "Potential"
		}
		extracted.DealTitle = company + " Deal - $" + humanize.Comma(int64(value))
	}

	if actions := collectActions(text); len(actions) > 0 {
		extracted.NextStep = strings.Join(actions, "; ")
	}

	extracted.Summary = fallbackSummary(text, sourceType)
	extracted.Sentiment = keywordSentiment(text)

	return extracted
}

// normalizePhone formats a raw phone match as E.164, assuming US numbers
// when no country code is present. Unparseable numbers pass through as
// matched.
func normalizePhone(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// largestAmount returns the biggest dollar amount mentioned in the text.
func largestAmount(text string) (float64, bool) {
	matches := moneyPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	var largest float64
	found := false
	for _, match := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			continue
		}
		if !found || value > largest {
			largest = value
			found = true
		}
	}
	return largest, found
}

// collectActions gathers up to two matches per action pattern, three total.
func collectActions(text string) []string {
	actions := []string{}
	for _, pattern := range fallbackActionPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) > 2 {
			matches = matches[:2]
		}
		for _, match := range matches {
			actions = append(actions, strings.TrimSpace(match[1]))
		}
	}
	if len(actions) > 3 {
		actions = actions[:3]
	}
	return actions
}

// fallbackSummary builds a summary from substantive sentences for calls,
// or a plain prefix of the text for other source types.
func fallbackSummary(text, sourceType string) string {
	if sourceType == entities.SourceTypeCall {
		important := []string{}
		for _, sentence := range fallbackSentenceSplit.Split(text, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) <= 50 {
				continue
			}
			lower := strings.ToLower(sentence)
			for _, keyword := range callSummaryKeywords {
				if strings.Contains(lower, keyword) {
					important = append(important, sentence)
					break
				}
			}
			if len(important) >= 3 {
				break
			}
		}
		if len(important) > 0 {
			return strings.Join(important, ". ") + "."
		}
		return prefix(text, 200)
	}
	return prefix(text, 150)
}

func prefix(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

// keywordSentiment classifies overall tone by counting which keyword set
// is better represented. Each keyword counts once no matter how often it
// appears.
func keywordSentiment(text string) string {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	negative := 0
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return entities.SentimentPositive
	case negative > positive:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}
