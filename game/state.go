package game

// State is where the engine is within a turn.
type State uint8

const (
	AwaitingAction State = iota
	Passing
	Exchanging
	Playing
	TurnResolved
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingAction:
		return "awaiting action"
	case Passing:
		return "passing"
	case Exchanging:
		return "exchanging"
	case Playing:
		return "playing"
	case TurnResolved:
		return "turn resolved"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// EndReason records why a game stopped.
type EndReason uint8

const (
	NotEnded EndReason = iota
	// EndedOutOfTiles: the bag is empty and the player on turn has no tiles.
	EndedOutOfTiles
	// EndedScoreless: too many scoreless turns and nobody chose to go on.
	EndedScoreless
)

func (e EndReason) String() string {
	switch e {
	case EndedOutOfTiles:
		return "out of tiles"
	case EndedScoreless:
		return "scoreless turns"
	}
	return "not ended"
}
