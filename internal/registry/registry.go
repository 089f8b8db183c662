package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maaaruch/tally/internal/domain"
)

var (
	ErrNotFound         = errors.New("candidate not found")
	ErrInvalidCandidate = errors.New("invalid candidate")
)

// Registry holds the fixed candidate set in configuration order.
type Registry struct {
	candidates []domain.Candidate
	byID       map[int]string
}

func New(candidates []domain.Candidate) (*Registry, error) {
	r := &Registry{
		candidates: make([]domain.Candidate, 0, len(candidates)),
		byID:       make(map[int]string, len(candidates)),
	}
	for _, c := range candidates {
		if c.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d is not positive", ErrInvalidCandidate, c.ID)
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: id %d has an empty name", ErrInvalidCandidate, c.ID)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCandidate, c.ID)
		}
		r.byID[c.ID] = c.Name
		r.candidates = append(r.candidates, c)
	}
	return r, nil
}

func (r *Registry) List() []domain.Candidate {
	out := make([]domain.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.candidates))
	for _, c := range r.candidates {
		ids = append(ids, c.ID)
	}
	return ids
}

func (r *Registry) IsValid(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// NameOf returns the display name for id. Callers are expected to check
// IsValid first.
func (r *Registry) NameOf(id int) (string, error) {
	name, ok := r.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return name, nil
}
