package game

import (
	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// PlayerView is what a snapshot shows of one player.
type PlayerView struct {
	Name  string
	Kind  Kind
	Score int
	Rack  []tilemapping.Tile
}

// Snapshot is a read-only copy of the game state. Changing it has no
// effect on the game.
type Snapshot struct {
	Board          *board.GameBoard
	Players        []PlayerView
	OnTurn         int
	TurnNumber     int
	BagCount       int
	ScorelessTurns int
	WordsInPlay    map[string]int
	Scoring        ScoringMode
	State          State
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board: g.board.Copy(),
		Players: lo.Map(g.players, func(p *playerState, _ int) PlayerView {
			return PlayerView{Name: p.Name, Kind: p.Kind, Score: p.points, Rack: p.rack.Tiles()}
		}),
		OnTurn:         g.onturn,
		TurnNumber:     g.turnnum,
		BagCount:       g.bag.TilesRemaining(),
		ScorelessTurns: g.scorelessTurns,
		WordsInPlay:    g.WordsInPlay(),
		Scoring:        g.rules.scoring,
		State:          g.state,
	}
}

// Rack is a copy of the rack of the player on turn.
func (s Snapshot) Rack() *tilemapping.Rack {
	return tilemapping.NewRackOf(s.Players[s.OnTurn].Rack)
}

// FirstPlay is true until someone has put a word on the board.
func (s Snapshot) FirstPlay() bool {
	return len(s.WordsInPlay) == 0
}

func (s Snapshot) Over() bool {
	return s.State == GameOver
}
