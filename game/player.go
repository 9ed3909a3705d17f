package game

import (
	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/tilemapping"
)

// Kind tells the engine where a player's moves come from.
type Kind uint8

const (
	// KindHuman players are asked through a MoveSupplier.
	KindHuman Kind = iota
	// KindAutomated players pick their own moves with a Strategy.
	KindAutomated
)

func (k Kind) String() string {
	if k == KindAutomated {
		return "bot"
	}
	return "human"
}

// Player describes a seat at the game. Exactly one of Supplier and
// Strategy is used, chosen by Kind.
type Player struct {
	Name     string
	Kind     Kind
	Supplier MoveSupplier
	Strategy Strategy
}

func NewHumanPlayer(name string, supplier MoveSupplier) Player {
	return Player{Name: name, Kind: KindHuman, Supplier: supplier}
}

func NewAutomatedPlayer(name string, strategy Strategy) Player {
	return Player{Name: name, Kind: KindAutomated, Strategy: strategy}
}

type playerState struct {
	Player

	rack   *tilemapping.Rack
	points int
}

func newPlayerState(p Player) *playerState {
	return &playerState{Player: p, rack: tilemapping.NewRack()}
}

func (p *playerState) addPoints(pts int) {
	p.points += pts
	log.Debug().Str("player", p.Name).Int("pts", pts).Int("total", p.points).Msg("added points")
}

type playerStates []*playerState
