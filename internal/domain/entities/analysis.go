package entities

// AgentAnalysis is the complete structured result of analyzing one transcript.
// Every list field is non-nil after assembly; the optional minutes-of-meeting
// fields stay empty when nothing matched.
type AgentAnalysis struct {
	Summary            string           `json:"summary"`
	KeyPoints          []string         `json:"key_points"`
	SentimentTimeline  []SentimentPoint `json:"sentiment_timeline"`
	RiskLevel          string           `json:"risk_level"`
	ChurnProbability   float64          `json:"churn_probability"`
	Insights           []Insight        `json:"insights"`
	RecommendedActions []string         `json:"recommended_actions"`
	ContactsIdentified []ContactRecord  `json:"contacts_identified"`
	DealsIdentified    []DealRecord     `json:"deals_identified"`
	TasksToCreate      []TaskRecord     `json:"tasks_to_create"`

	// Minutes of meeting
	MeetingTitle  string       `json:"meeting_title,omitempty"`
	MeetingDate   string       `json:"meeting_date,omitempty"`
	Attendees     []string     `json:"attendees"`
	DecisionsMade []string     `json:"decisions_made"`
	ActionItems   []ActionItem `json:"action_items"`
	FollowUpItems []string     `json:"follow_up_items"`
	NextMeeting   string       `json:"next_meeting,omitempty"`
}

// SentimentPoint is one change point in the sentiment timeline.
type SentimentPoint struct {
	Stage       string `json:"stage"`
	Sentiment   string `json:"sentiment"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Sentiment tags emitted by the timeline analyzer
const (
	SentimentNegative   = "negative"
	SentimentEmpathetic = "empathetic"
	SentimentPositive   = "positive"
	SentimentNeutral    = "neutral"
)

// Insight is a categorized, prioritized finding with suggested actions.
type Insight struct {
	Category         string   `json:"category"`
	Priority         string   `json:"priority"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ActionRequired   bool     `json:"action_required"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Insight categories
const (
	InsightCategoryRisk        = "risk"
	InsightCategorySentiment   = "sentiment"
	InsightCategoryOpportunity = "opportunity"
	InsightCategoryTask        = "task"
)

// Insight priorities
const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"
)

// Risk levels produced by the threshold ladder
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)
