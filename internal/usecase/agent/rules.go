package agent

import (
	"regexp"

	"github.com/callsight/callsight/internal/domain/entities"
)

// Rule tables for the transcript analysis pipeline. Evaluation order inside
// each table is significant: classifiers are first-match-wins and capped
// lists truncate in rule order, so keep these in the documented order.

// sentimentRule classifies a transcript line by keyword containment.
type sentimentRule struct {
	sentiment string
	emoji     string
	keywords  []string
}

// Ordered line-sentiment rules; a line that matches none is neutral.
var sentimentRules = []sentimentRule{
	{entities.SentimentNegative, "😠", []string{"angry", "upset", "ridiculous", "unacceptable", "terrible", "worst"}},
	{entities.SentimentEmpathetic, "🤝", []string{"apologize", "sorry", "understand", "help"}},
	{entities.SentimentPositive, "😊", []string{"thank", "appreciate", "great", "excellent"}},
}

const neutralEmoji = "😐"

// churnWeight is an additive penalty per substring occurrence. Counting is
// deliberately substring-based, not word-tokenized ("cancel" also counts
// inside "cancellation").
type churnWeight struct {
	keyword string
	weight  float64
}

var churnPenalties = []churnWeight{
	{"cancel", 10},
	{"refund", 8},
	{"unacceptable", 5},
	{"worst", 7},
	{"never", 6},
}

// Churn scoring constants
const (
	churnBaseline           = 50.0
	churnVoucherDeclined    = 15.0
	churnGratitudeRelief    = 5.0
	churnResolutionRelief   = 10.0
	churnNegativePointDelta = 8.0
)

// Staff-mention patterns for contact identification, tried in order.
var staffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:CSR|Agent|Supervisor|Manager)[\s:]+([A-Z][a-z]+(?: [A-Z][a-z]+)?)`),
	regexp.MustCompile(`this is ([A-Z][a-z]+(?: [A-Z][a-z]+)?)`),
}

// keywordRule maps transcript keywords to a classification, first match wins.
type keywordRule struct {
	keywords []string
	value    string
}

var dealStageRules = []keywordRule{
	{[]string{"refund", "cancel"}, entities.DealStageCancelledRefunded},
	{[]string{"closed", "completed"}, entities.DealStageClosedWon},
	{[]string{"negotiat", "discuss"}, entities.DealStageNegotiation},
}

var dealStatusRules = []keywordRule{
	{[]string{"refund"}, entities.DealStatusRefunded},
	{[]string{"cancel"}, entities.DealStatusCancelled},
	{[]string{"complete"}, entities.DealStatusCompleted},
}

// Key-point selection keywords for the executive key-point list.
var keyPointKeywords = []string{
	"refund", "cancel", "problem", "issue", "apologize",
	"resolve", "supervisor", "voucher", "compensation",
}

// Date patterns for meeting metadata, tried in order: ISO, slash form,
// month-name form.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`),
}

// Decision phrasing patterns, tried in order.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:decided|agreed|concluded|determined)\s+(?:to|that)\s+([^.!?]{20,100})`),
	regexp.MustCompile(`(?i)(?:will|going to)\s+([^.!?]{20,80})`),
	regexp.MustCompile(`(?i)(?:refund|process|implement|schedule|approve)\s+([^.!?]{15,80})`),
}

// Action-item phrasing patterns scanned after task conversion.
var actionItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:action item|to-do|task):\s*([^.!?\n]{15,80})`),
	regexp.MustCompile(`(?i)(?:please|need to|should|must)\s+([^.!?\n]{15,80})`),
}

// Follow-up phrasing patterns.
var followUpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:follow[- ]up|follow up with|reach out to)\s+([^.!?\n]{15,80})`),
	regexp.MustCompile(`(?i)(?:next time|in the future|moving forward)\s+([^.!?\n]{15,80})`),
}

// Next-meeting phrasing patterns; only the first match is used.
var nextMeetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)next (?:meeting|call|session)\s+(?:on|at)?\s*([^.!?\n]{10,50})`),
	regexp.MustCompile(`(?i)(?:schedule|book|set up)\s+(?:a|another|the next)\s+(?:meeting|call)\s+(?:for|on)?\s*([^.!?\n]{10,50})`),
	regexp.MustCompile(`(?i)(?:see you|talk to you|speak with you)\s+([^.!?\n]{10,40})`),
}

// sentenceSplit separates transcripts into sentences for key-point scanning.
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// List caps
const (
	maxTimelinePoints     = 5
	maxKeyPoints          = 5
	maxContacts           = 5
	maxRecommendedActions = 6
	maxDecisions          = 5
	maxActionItems        = 8
	maxFollowUps          = 5
)

// Churn thresholds shared by the summary warning line and the risk ladder.
const (
	churnCriticalThreshold = 70.0
	churnWarningThreshold  = 50.0
	churnMediumThreshold   = 30.0
	churnCompensation      = 60.0
)
