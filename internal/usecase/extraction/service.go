package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/callsight/callsight/internal/domain/entities"
	pkgai "github.com/callsight/callsight/pkg/ai"
)

// Service extracts structured CRM fields from raw text
type Service interface {
	Extract(ctx context.Context, text, sourceType string) (*entities.ExtractedFields, error)
}

type extractionService struct {
	llm    *pkgai.LLMClient
	logger *zap.Logger
}

// NewService constructs the extraction service. A nil or unconfigured LLM
// client is fine: extraction then runs entirely on the regex fallback.
func NewService(llm *pkgai.LLMClient, logger *zap.Logger) Service {
	return &extractionService{
		llm:    llm,
		logger: logger,
	}
}

// jsonObject pulls the first JSON object out of a model response, including
// responses wrapped in markdown code fences.
var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// Extract pulls CRM fields out of text. The LLM path is tried first when a
// client is configured; any failure degrades to the regex fallback so the
// caller always gets a usable record.
func (s *extractionService) Extract(ctx context.Context, text, sourceType string) (*entities.ExtractedFields, error) {
	if s.llm == nil || !s.llm.Configured() {
		if s.logger != nil {
			s.logger.Info("extraction llm not configured, using fallback extraction")
		}
		return fallbackExtract(text, sourceType), nil
	}

	prompt := buildExtractionPrompt(text, sourceType)

	var response string
	completeFn := func() error {
		var err error
		response, err = s.llm.Complete(ctx, prompt)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(completeFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Warn("llm extraction failed after retries, using fallback",
				zap.String("source_type", sourceType),
				zap.Error(err),
			)
		}
		return fallbackExtract(text, sourceType), nil
	}

	extracted, err := parseExtractionResponse(response)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to parse llm extraction response, using fallback",
				zap.Error(err),
			)
		}
		return fallbackExtract(text, sourceType), nil
	}

	if s.logger != nil {
		s.logger.Info("llm extraction completed",
			zap.String("source_type", sourceType),
			zap.Bool("has_contact", extracted.ContactName != ""),
			zap.Bool("has_deal", extracted.DealTitle != "" || extracted.DealValue != 0),
		)
	}
	return extracted, nil
}

func buildExtractionPrompt(text, sourceType string) string {
	return fmt.Sprintf(`You are a CRM data extraction AI. Extract structured information from the following %s.

Extract these fields if present:
- contact_name: Full name of the person
- contact_email: Email address
- contact_phone: Phone number
- contact_title: Job title or role
- company_name: Company name
- company_website: Company website
- deal_title: Name or description of the deal/opportunity
- deal_value: Numeric value of the deal (extract number only)
- next_step: What needs to happen next
- next_step_date: When the next step should happen (format: YYYY-MM-DD)
- summary: Brief summary of the conversation/email
- sentiment: Overall sentiment (positive, neutral, or negative)
- entities: Key topics, products, or terms mentioned (as a comma-separated list)

Text to analyze:
%s

Return your response as a JSON object with only the fields you found. Use null for missing fields.
Example format:
{
    "contact_name": "John Doe",
    "contact_email": "john@example.com",
    "company_name": "Acme Corp",
    "deal_value": 50000,
    "summary": "Discussion about Q1 pricing",
    "sentiment": "positive",
    "entities": ["pricing", "Q1", "contract"]
}

JSON Response:`, sourceType, text)
}

// parseExtractionResponse decodes the model output into ExtractedFields.
// The entities field arrives as either a JSON array or a comma-separated
// string depending on the model, so it is decoded separately.
func parseExtractionResponse(response string) (*entities.ExtractedFields, error) {
	match := jsonObject.FindString(response)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in extraction response")
	}

	var raw struct {
		entities.ExtractedFields
		Entities json.RawMessage `json:"entities"`
	}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}

	extracted := raw.ExtractedFields
	extracted.Entities = decodeEntities(raw.Entities)
	return &extracted, nil
}

func decodeEntities(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil
	}

	parts := []string{}
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
