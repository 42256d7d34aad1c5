package fivedraw

// SeatedPlayer is a minimal playable.Player for hosts that don't carry
// their own player model
type SeatedPlayer struct {
	ID    int64
	Name  string
	Stake int
}

// GetPlayerID returns the player ID
func (s SeatedPlayer) GetPlayerID() int64 {
	return s.ID
}

// GetName returns the display name
func (s SeatedPlayer) GetName() string {
	return s.Name
}

// GetTableStake returns the bankroll the player sits down with
func (s SeatedPlayer) GetTableStake() int {
	return s.Stake
}
