package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/maaaruch/tally/internal/prompt"
	"github.com/maaaruch/tally/internal/registry"
	"github.com/maaaruch/tally/internal/session"
)

// ErrFault marks an error the voting loop cannot recover from.
var ErrFault = errors.New("voting session fault")

const (
	actionVote = "v"
	actionExit = "x"
)

type App struct {
	console  *prompt.Console
	registry *registry.Registry
	session  *session.Session
	log      *log.Entry
}

func New(console *prompt.Console, reg *registry.Registry, sess *session.Session, logger *log.Logger) *App {
	return &App{
		console:  console,
		registry: reg,
		session:  sess,
		log:      logger.WithField("session", sess.ID.String()),
	}
}

// Run drives the action menu until the user exits or input runs out, then
// prints the results once. Bad input never leaves the prompts; anything else
// ends the run with ErrFault and no results.
func (a *App) Run(ctx context.Context) error {
	a.log.Debug("session started")

	for {
		done, err := a.step(ctx)
		if err != nil {
			if endOfInput(err) {
				a.log.WithError(err).Warn("input closed, finishing with current tally")
				// the last input label is still open on the line
				a.console.Println()
				break
			}
			a.log.WithError(err).Error("session aborted")
			return err
		}
		if done {
			break
		}
	}

	a.session.Finish()
	return a.renderResults()
}

// step runs one pass of the action menu. A panic inside it becomes ErrFault.
func (a *App) step(ctx context.Context) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFault, r)
		}
	}()

	action, err := prompt.Ask(ctx, a.console, actionMenu())
	if err != nil {
		return false, err
	}

	switch action {
	case actionVote:
		return false, a.castVote(ctx)
	case actionExit:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unhandled action %q", ErrFault, action)
	}
}

func (a *App) castVote(ctx context.Context) error {
	if err := a.session.BeginVote(); err != nil {
		return fmt.Errorf("%w: %v", ErrFault, err)
	}

	candidateID, err := prompt.Ask(ctx, a.console, candidateMenu(a.registry))
	if err != nil {
		return err
	}

	name, err := a.session.Vote(candidateID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFault, err)
	}
	a.log.WithField("candidate", candidateID).Debug("vote recorded")

	a.console.Println("Voted for " + name)
	return nil
}

func (a *App) renderResults() error {
	res, err := a.session.Results()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFault, err)
	}

	a.console.Rule()
	for _, r := range res.Candidates {
		a.console.Printf("%s - %d\n", r.Name, r.Votes)
	}
	a.console.Printf("Total - %d\n", res.Total)
	a.console.Rule()

	a.log.WithField("total", res.Total).Debug("session finished")
	return nil
}

func endOfInput(err error) bool {
	return errors.Is(err, prompt.ErrEndOfInput) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
