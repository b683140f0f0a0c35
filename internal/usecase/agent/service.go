package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/callsight/callsight/internal/domain/entities"
	domainrepo "github.com/callsight/callsight/internal/domain/repositories"
)

// Extractor pulls structured CRM fields out of a raw transcript.
type Extractor interface {
	Extract(ctx context.Context, transcript, sourceType string) (*entities.ExtractedFields, error)
}

// AnalysisCache stores completed analyses keyed by transcript fingerprint.
// Get returns (nil, nil) on a cache miss.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*entities.AgentAnalysis, error)
	Set(ctx context.Context, key string, analysis *entities.AgentAnalysis) error
}

// Service defines transcript analysis orchestration methods
type Service interface {
	Analyze(ctx context.Context, transcript, analysisContext string) (*entities.AgentAnalysis, error)
	ListInteractions(ctx context.Context, limit int) ([]*entities.Interaction, error)
}

type agentService struct {
	extractor       Extractor
	interactionRepo domainrepo.InteractionRepository
	cache           AnalysisCache
	logger          *zap.Logger
}

// NewService constructs the analysis service. The repository and cache are
// optional; a nil value disables persistence or caching respectively.
func NewService(
	extractor Extractor,
	interactionRepo domainrepo.InteractionRepository,
	cache AnalysisCache,
	logger *zap.Logger,
) Service {
	return &agentService{
		extractor:       extractor,
		interactionRepo: interactionRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Analyze runs the full deterministic pipeline over a transcript. The same
// transcript and context always produce the same analysis, so cached results
// are returned verbatim.
func (s *agentService) Analyze(ctx context.Context, transcript, analysisContext string) (*entities.AgentAnalysis, error) {
	if analysisContext == "" {
		analysisContext = entities.ContextCustomerService
	}

	cacheKey := analysisCacheKey(transcript, analysisContext)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("analysis cache lookup failed", zap.Error(err))
			}
		} else if cached != nil {
			if s.logger != nil {
				s.logger.Info("analysis served from cache",
					zap.String("cache_key", cacheKey[:12]),
				)
			}
			return cached, nil
		}
	}

	extracted, err := s.extractor.Extract(ctx, transcript, entities.SourceTypeCall)
	if err != nil {
		// Extraction degrades, never blocks: the rule pipeline still runs
		// over whatever fields were recovered.
		if s.logger != nil {
			s.logger.Warn("field extraction failed, continuing with empty fields", zap.Error(err))
		}
		extracted = &entities.ExtractedFields{}
	}

	timeline := analyzeSentimentTimeline(transcript)
	risks := detectRisks(transcript, extracted)
	churnProb := calculateChurnProbability(transcript, timeline)
	contacts := identifyContacts(transcript, extracted)
	deals := extractDeals(transcript, extracted)
	insights := generateInsights(extracted, risks)
	tasks := generateTasks(transcript, extracted, insights)
	summary := composeSummary(transcript, extracted, timeline, churnProb)
	keyPoints := extractKeyPoints(transcript)
	riskLevel := determineRiskLevel(churnProb, len(risks))
	actions := generateRecommendedActions(riskLevel, churnProb)

	title, date := extractMeetingMetadata(transcript, analysisContext)

	analysis := &entities.AgentAnalysis{
		Summary:            summary,
		KeyPoints:          keyPoints,
		SentimentTimeline:  timeline,
		RiskLevel:          riskLevel,
		ChurnProbability:   churnProb,
		Insights:           insights,
		RecommendedActions: actions,
		ContactsIdentified: contacts,
		DealsIdentified:    deals,
		TasksToCreate:      tasks,
		MeetingTitle:       title,
		MeetingDate:        date,
		Attendees:          extractAttendees(contacts),
		DecisionsMade:      extractDecisions(transcript),
		ActionItems:        extractActionItems(transcript, tasks),
		FollowUpItems:      extractFollowUps(transcript, extracted),
		NextMeeting:        extractNextMeeting(transcript),
	}

	if s.logger != nil {
		s.logger.Info("transcript analysis completed",
			zap.String("context", analysisContext),
			zap.String("risk_level", riskLevel),
			zap.Float64("churn_probability", churnProb),
			zap.Int("risks", len(risks)),
			zap.Int("contacts", len(contacts)),
			zap.Int("tasks", len(tasks)),
		)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, analysis); err != nil && s.logger != nil {
			s.logger.Warn("failed to cache analysis", zap.Error(err))
		}
	}

	s.storeInteraction(ctx, transcript, analysisContext, analysis)

	return analysis, nil
}

// ListInteractions returns the most recently analyzed interactions.
func (s *agentService) ListInteractions(ctx context.Context, limit int) ([]*entities.Interaction, error) {
	if s.interactionRepo == nil {
		return []*entities.Interaction{}, nil
	}

	interactions, err := s.interactionRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}

// storeInteraction persists the analyzed interaction. Persistence is best
// effort: a storage failure is logged and the analysis is still returned.
func (s *agentService) storeInteraction(ctx context.Context, transcript, analysisContext string, analysis *entities.AgentAnalysis) {
	if s.interactionRepo == nil {
		return
	}

	interaction := entities.NewInteraction(entities.SourceTypeCall, analysisContext, transcript)
	interaction.Summary = analysis.Summary
	interaction.RiskLevel = analysis.RiskLevel
	interaction.ChurnProbability = analysis.ChurnProbability

	if raw, err := json.Marshal(analysis); err == nil {
		interaction.Analysis = raw
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to store interaction",
				zap.String("interaction_id", interaction.ID.String()),
				zap.Error(err),
			)
		}
		return
	}

	if s.logger != nil {
		s.logger.Info("interaction stored",
			zap.String("interaction_id", interaction.ID.String()),
			zap.String("risk_level", analysis.RiskLevel),
		)
	}
}

// analysisCacheKey fingerprints the transcript and context pair.
func analysisCacheKey(transcript, analysisContext string) string {
	sum := sha256.Sum256([]byte(transcript + "|" + analysisContext))
	return hex.EncodeToString(sum[:])
}
