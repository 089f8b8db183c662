package session

import (
	"fmt"

	"github.com/maaaruch/tally/internal/domain"
	"github.com/maaaruch/tally/internal/registry"
)

// MemoryTally keeps counts in process.
type MemoryTally struct {
	candidates []domain.Candidate
	votes      map[int]int64
}

func NewMemoryTally(candidates []domain.Candidate) *MemoryTally {
	t := &MemoryTally{
		candidates: candidates,
		votes:      make(map[int]int64, len(candidates)),
	}
	for _, c := range candidates {
		t.votes[c.ID] = 0
	}
	return t
}

func (t *MemoryTally) Record(candidateID int) error {
	if _, ok := t.votes[candidateID]; !ok {
		return fmt.Errorf("%w: id %d", registry.ErrNotFound, candidateID)
	}
	t.votes[candidateID]++
	return nil
}

func (t *MemoryTally) Results() ([]domain.CandidateResult, error) {
	out := make([]domain.CandidateResult, 0, len(t.candidates))
	for _, c := range t.candidates {
		out = append(out, domain.CandidateResult{ID: c.ID, Name: c.Name, Votes: t.votes[c.ID]})
	}
	return out, nil
}
