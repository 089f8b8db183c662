package storage

import (
	"fmt"
	"time"

	"github.com/maaaruch/tally/internal/domain"
)

// Tally records the votes of one session in the store.
type Tally struct {
	store     *Store
	sessionID string
	now       func() time.Time
}

func NewTally(store *Store, sessionID string) *Tally {
	return &Tally{
		store:     store,
		sessionID: sessionID,
		now:       time.Now,
	}
}

func (t *Tally) Record(candidateID int) error {
	if _, err := t.store.CandidateName(candidateID); err != nil {
		return fmt.Errorf("candidate %d: %w", candidateID, err)
	}
	return t.store.RecordVote(t.sessionID, candidateID, t.now())
}

func (t *Tally) Results() ([]domain.CandidateResult, error) {
	return t.store.Results(t.sessionID)
}

// Count is the number of vote rows stored for the session.
func (t *Tally) Count() (int64, error) {
	return t.store.VoteCount(t.sessionID)
}
