package domain

import "time"

// SessionStatus is the scheduling state of a training session
type SessionStatus string

const (
	SessionPending SessionStatus = "pending"
)

// Session is one scheduled occurrence of training work for a deal.
// Sessions have no remote identity; only their count per deal is reconciled.
type Session struct {
	Address   *string
	Comment   string
	CreatedAt time.Time
	DealID    uint
	EndAt     *time.Time
	ID        uint
	Site      *string
	StartAt   *time.Time
	Status    SessionStatus
	UpdatedAt time.Time
}

// SessionsToCreate returns how many sessions must be appended so that
// existing reaches needed. It never returns a negative number, so the
// reconciliation can only grow the set of sessions.
func SessionsToCreate(needed, existing int) int {
	if needed <= existing {
		return 0
	}
	return needed - existing
}

// NewPendingSessions builds count sessions defaulted from the deal
func NewPendingSessions(deal Deal, count int) []Session {
	sessions := make([]Session, 0, max(count, 0))
	for i := 0; i < count; i++ {
		sessions = append(sessions, Session{
			Address: copyString(deal.Direction),
			DealID:  deal.ID,
			Site:    copyString(deal.Site),
			Status:  SessionPending,
		})
	}
	return sessions
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
