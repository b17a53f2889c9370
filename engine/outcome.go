package engine

import "fmt"

// OutcomeKind is the result of one progression check
type OutcomeKind uint8

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeAdvance
	OutcomeGameOver
)

// Result qualifies a game-over outcome
type Result uint8

const (
	ResultNone Result = iota
	ResultWon
	ResultLost
)

func (r Result) String() string {
	switch r {
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	}
	return "none"
}

// Outcome is returned from every tick and delivered once on the outcome channel when a level ends
type Outcome struct {
	Kind   OutcomeKind
	Level  string // Next level for OutcomeAdvance
	Result Result // Set for OutcomeGameOver
	From   string // Level that produced the outcome
}

// Continue is the outcome of a tick that did not end the level
func Continue() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

// Advance requests the next level
func Advance(from, next string) Outcome {
	return Outcome{Kind: OutcomeAdvance, Level: next, From: from}
}

// GameOver ends the run
func GameOver(from string, r Result) Outcome {
	return Outcome{Kind: OutcomeGameOver, Result: r, From: from}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeAdvance:
		return fmt.Sprintf("advance(%s -> %s)", o.From, o.Level)
	case OutcomeGameOver:
		return fmt.Sprintf("game_over(%s, %s)", o.From, o.Result)
	}
	return "continue"
}
