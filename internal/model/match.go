package model

import "time"

// MatchID uniquely identifies a match, used for log correlation
type MatchID string

// PlayerNumber identifies one of the two seats in a match
type PlayerNumber int

const (
	PlayerOne PlayerNumber = 1
	PlayerTwo PlayerNumber = 2
)

// Other returns the opposing seat
func (p PlayerNumber) Other() PlayerNumber {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// PlayerIdentity is a player's display name, fixed for the process lifetime
type PlayerIdentity struct {
	Name string
}

// Players holds both seats of a match
type Players struct {
	One PlayerIdentity
	Two PlayerIdentity
}

// Name returns the display name for a seat
func (p Players) Name(n PlayerNumber) string {
	if n == PlayerOne {
		return p.One.Name
	}
	return p.Two.Name
}

// MatchPhase represents the current phase of a match
type MatchPhase string

const (
	MatchPhaseAwaitingOriginal MatchPhase = "awaiting_original" // Waiting for the original word
	MatchPhaseAwaitingMove     MatchPhase = "awaiting_move"     // Players alternating moves
	MatchPhaseEnded            MatchPhase = "ended"             // Match resolved
)

// MatchState is the full state of one match in progress.
//
// UsedWords preserves insertion order and the casing the words were typed
// with; element 0 is always the original word. Validation is case-normalized,
// so UsedWords never contains two spellings of the same word.
type MatchState struct {
	ID           MatchID
	Phase        MatchPhase
	OriginalWord string
	UsedWords    []string
	CurrentTurn  PlayerNumber

	StartedAt time.Time
	UpdatedAt time.Time
}

// MoveCount returns the number of accepted moves, excluding the original word
func (m *MatchState) MoveCount() int {
	if len(m.UsedWords) == 0 {
		return 0
	}
	return len(m.UsedWords) - 1
}

// EndReason records how a match ended
type EndReason string

const (
	EndReasonTimeout EndReason = "timeout" // Acting player ran out of time
	EndReasonAborted EndReason = "aborted" // Process interrupted mid-match
)

// MatchSummary is a lightweight record of a completed match
type MatchSummary struct {
	ID          MatchID
	Winner      string
	Loser       string
	WordsPlayed int
	Reason      EndReason
	CompletedAt time.Time
}
