package entities

// TaskRecord is a follow-up task derived from an analysis. Due dates are
// free-text labels ("24 hours"), not computed timestamps.
type TaskRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to"`
}

// Task priorities
const (
	TaskPriorityUrgent = "urgent"
	TaskPriorityHigh   = "high"
	TaskPriorityMedium = "medium"
)

// ActionItem is a minutes-of-meeting action entry, derived from tasks and
// free-text patterns.
type ActionItem struct {
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// ActionItemStatusPending is the only status assigned at extraction time.
const ActionItemStatusPending = "pending"

// ActionItemOwnerTBD is used when no owner or due date could be attributed.
const ActionItemOwnerTBD = "TBD"
