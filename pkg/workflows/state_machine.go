package workflows

// StateMachine enforces project status transitions
type StateMachine struct {
	allowedTransitions map[string][]string
}

// NewStateMachine creates the submission/review state machine. DRAFT
// projects are submitted into PENDING, reviewed out of PENDING or
// UNDER_REVIEW, and terminal review decisions can be revoked back to
// PENDING.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		allowedTransitions: map[string][]string{
			"DRAFT":        {"PENDING"},
			"PENDING":      {"UNDER_REVIEW", "APPROVED", "REJECTED", "DRAFT"},
			"UNDER_REVIEW": {"APPROVED", "REJECTED", "DRAFT"},
			"APPROVED":     {"PENDING"}, // revoke
			"REJECTED":     {"PENDING"}, // revoke
			"LISTED":       {},
			"FUNDING":      {},
			"FUNDED":       {},
		},
	}
}

// CanTransition checks if a status transition is allowed
func (sm *StateMachine) CanTransition(from, to string) bool {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return false
	}
	for _, allowedTo := range allowed {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// GetAllowedTransitions returns the allowed next statuses for a given status
func (sm *StateMachine) GetAllowedTransitions(from string) []string {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []string{}
	}
	return allowed
}
