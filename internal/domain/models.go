package domain

type Candidate struct {
	ID   int
	Name string
}

type CandidateResult struct {
	ID    int
	Name  string
	Votes int64
}

// DefaultCandidates is the fixed ballot the console program starts with.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{ID: 1, Name: "John"},
		{ID: 2, Name: "Jane"},
	}
}
