package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/maaaruch/tally/internal/domain"
	"github.com/maaaruch/tally/internal/registry"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrTallyMismatch     = errors.New("tally does not match cast votes")
)

type State int

const (
	AwaitingAction State = iota
	CastingVote
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingAction:
		return "awaiting_action"
	case CastingVote:
		return "casting_vote"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Tally stores vote counts. Results must list every candidate in registry
// order, zero counts included.
type Tally interface {
	Record(candidateID int) error
	Results() ([]domain.CandidateResult, error)
}

// Counter is implemented by tallies that keep their own count of recorded
// votes. Results checks it against the votes cast in the session.
type Counter interface {
	Count() (int64, error)
}

type Results struct {
	Candidates []domain.CandidateResult
	Total      int64
}

// Session is one run of the voting loop: its state and the tally it owns.
type Session struct {
	ID       uuid.UUID
	state    State
	registry *registry.Registry
	tally    Tally
	cast     int64
}

func New(id uuid.UUID, reg *registry.Registry, tally Tally) *Session {
	return &Session{
		ID:       id,
		state:    AwaitingAction,
		registry: reg,
		tally:    tally,
	}
}

func (s *Session) State() State {
	return s.state
}

// Cast reports how many votes were recorded successfully.
func (s *Session) Cast() int64 {
	return s.cast
}

func (s *Session) BeginVote() error {
	if s.state != AwaitingAction {
		return fmt.Errorf("%w: vote from %s", ErrInvalidTransition, s.state)
	}
	s.state = CastingVote
	return nil
}

// Vote records one vote for candidateID and returns the candidate's name.
// On an unknown candidate the session stays in CastingVote and nothing is
// recorded.
func (s *Session) Vote(candidateID int) (string, error) {
	if s.state != CastingVote {
		return "", fmt.Errorf("%w: cast from %s", ErrInvalidTransition, s.state)
	}
	if !s.registry.IsValid(candidateID) {
		return "", fmt.Errorf("%w: id %d", registry.ErrNotFound, candidateID)
	}
	name, err := s.registry.NameOf(candidateID)
	if err != nil {
		return "", err
	}
	if err := s.tally.Record(candidateID); err != nil {
		return "", fmt.Errorf("record vote for %d: %w", candidateID, err)
	}
	s.cast++
	s.state = AwaitingAction
	return name, nil
}

func (s *Session) Finish() {
	s.state = Finished
}

func (s *Session) Results() (Results, error) {
	rows, err := s.tally.Results()
	if err != nil {
		return Results{}, fmt.Errorf("load results: %w", err)
	}

	var res Results
	res.Candidates = rows
	for _, r := range rows {
		res.Total += r.Votes
	}
	if res.Total != s.cast {
		return Results{}, fmt.Errorf("%w: counted %d, cast %d", ErrTallyMismatch, res.Total, s.cast)
	}
	if c, ok := s.tally.(Counter); ok {
		stored, err := c.Count()
		if err != nil {
			return Results{}, fmt.Errorf("count votes: %w", err)
		}
		if stored != s.cast {
			return Results{}, fmt.Errorf("%w: stored %d, cast %d", ErrTallyMismatch, stored, s.cast)
		}
	}
	return res, nil
}
