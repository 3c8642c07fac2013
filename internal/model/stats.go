package model

// StatsRecord is the durable mapping of player name to cumulative win count.
// The JSON shape is fixed: {"PlayerWins": {"<name>": <count>, ...}}.
type StatsRecord struct {
	PlayerWins map[string]int `json:"PlayerWins"`
}

// NewStatsRecord creates an empty stats record
func NewStatsRecord() *StatsRecord {
	return &StatsRecord{
		PlayerWins: make(map[string]int),
	}
}

// Clone returns a deep copy of the record
func (r *StatsRecord) Clone() *StatsRecord {
	out := NewStatsRecord()
	for name, wins := range r.PlayerWins {
		out.PlayerWins[name] = wins
	}
	return out
}
