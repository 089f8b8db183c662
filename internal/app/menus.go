package app

import (
	"strconv"

	"github.com/maaaruch/tally/internal/prompt"
	"github.com/maaaruch/tally/internal/registry"
)

func actionMenu() prompt.Menu[string] {
	return prompt.Menu[string]{
		Title:     "VOTE MENU",
		Separator: ". ",
		Input:     "Option: ",
		Options: []prompt.Option[string]{
			{Key: actionVote, Label: "Vote"},
			{Key: actionExit, Label: "Exit"},
		},
		Parse: prompt.ParseAction,
		Hint:  prompt.JoinChoices([]string{"'" + actionVote + "'", "'" + actionExit + "'"}),
	}
}

func candidateMenu(reg *registry.Registry) prompt.Menu[int] {
	var options []prompt.Option[int]
	for _, c := range reg.List() {
		options = append(options, prompt.Option[int]{Key: c.ID, Label: c.Name})
	}
	var keys []string
	for _, id := range reg.IDs() {
		keys = append(keys, strconv.Itoa(id))
	}

	return prompt.Menu[int]{
		Title:     "CANDIDATE MENU",
		Separator: ": ",
		Input:     "Candidate: ",
		Options:   options,
		Parse:     prompt.ParseCandidate,
		Hint:      prompt.JoinChoices(keys),
	}
}
