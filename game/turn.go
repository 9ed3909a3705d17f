package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// Pass gives up the turn.
func (g *Game) Pass() (*TurnRecord, error) {
	if g.state == GameOver {
		return nil, ErrGameOver
	}
	g.state = Passing
	rec := g.newRecord(move.NewPassMove())
	return g.resolveTurn(rec, 0), nil
}

// Exchange swaps the named letters for new tiles. Letters not on the rack
// and draws the bag cannot cover are reported as warnings in the record;
// the turn still counts.
func (g *Game) Exchange(letters []rune) (*TurnRecord, error) {
	if g.state == GameOver {
		return nil, ErrGameOver
	}
	if len(letters) == 0 {
		return nil, ErrNothingToExchange
	}
	g.state = Exchanging
	p := g.curPlayer()
	rec := g.newRecord(move.NewExchangeMove(letters))

	removed := 0
	for _, l := range letters {
		t, ok := p.rack.RemoveByLetter(l)
		if !ok {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("%c is not on the rack", l))
			continue
		}
		g.discard = append(g.discard, t)
		removed++
	}
	out := p.rack.DrawUpTo(g.bag, removed)
	if out.Drawn < removed {
		rec.Warnings = append(rec.Warnings,
			fmt.Sprintf("drew %d of %d tiles: %s", out.Drawn, removed, out.Reason))
	}
	for _, w := range rec.Warnings {
		log.Warn().Str("player", p.Name).Msg(w)
		g.presenter.Notify(w)
	}
	log.Debug().Int("exchanged", removed).Str("rack", p.rack.String()).Msg("exchange")
	return g.resolveTurn(rec, 0), nil
}

// Play puts tiles on the board. Nothing changes if it returns an error; a
// *RuleViolation that had to take tiles back off the board names them,
// and the presenter is told to revert them too.
func (g *Game) Play(placements []move.Placement) (*TurnRecord, error) {
	if g.state == GameOver {
		return nil, ErrGameOver
	}
	if len(placements) == 0 {
		return nil, ErrNoPlacements
	}
	p := g.curPlayer()
	placements, err := resolveTiles(p.rack, placements)
	if err != nil {
		return nil, err
	}

	g.state = Playing
	res, err := EvaluatePlay(g.board, g.rules.lexicon, g.wordsInPlay, placements, g.rules.scoring)
	if err != nil {
		g.state = AwaitingAction
		var rv *RuleViolation
		if errors.As(err, &rv) && len(rv.Reverted) > 0 {
			g.presenter.Revert(rv.Reverted)
		}
		log.Debug().Err(err).Str("player", p.Name).Msg("play rejected")
		return nil, err
	}

	rec := g.newRecord(move.NewPlayMove(placements))
	for _, pl := range placements {
		p.rack.RemoveByLetter(pl.Tile.Letter)
	}
	out := p.rack.DrawUpTo(g.bag, len(placements))
	if out.Drawn < len(placements) {
		w := fmt.Sprintf("drew %d of %d tiles: %s", out.Drawn, len(placements), out.Reason)
		rec.Warnings = append(rec.Warnings, w)
		g.presenter.Notify(w)
	}
	g.wordsInPlay = res.BoardWords
	rec.Words = res.WordStrings()
	p.addPoints(res.Score)
	log.Info().Str("player", p.Name).Strs("words", rec.Words).Int("score", res.Score).Msg("play")
	return g.resolveTurn(rec, res.Score), nil
}

// resolveTiles swaps each placement's tile for the matching one on the
// rack. Every letter has to be covered by a separate tile.
func resolveTiles(rack *tilemapping.Rack, placements []move.Placement) ([]move.Placement, error) {
	scratch := tilemapping.NewRackOf(rack.Tiles())
	resolved := make([]move.Placement, len(placements))
	for i, pl := range placements {
		t, ok := scratch.RemoveByLetter(pl.Tile.Letter)
		if !ok {
			return nil, fmt.Errorf("%w: %c", ErrTileNotOnRack, pl.Tile.Letter)
		}
		resolved[i] = move.Placement{Tile: t, Pos: pl.Pos}
	}
	return resolved, nil
}

// PlayMove dispatches any kind of move.
func (g *Game) PlayMove(m *move.Move) (*TurnRecord, error) {
	if m == nil {
		return nil, errors.New("nil move")
	}
	switch m.Action() {
	case move.MoveTypePass:
		return g.Pass()
	case move.MoveTypeExchange:
		return g.Exchange(m.ExchangeLetters())
	case move.MoveTypePlay:
		return g.Play(m.Placements())
	}
	return nil, fmt.Errorf("unhandled move type %v", m.Action())
}

func (g *Game) newRecord(m *move.Move) TurnRecord {
	p := g.curPlayer()
	return TurnRecord{
		Turn:   g.turnnum,
		Player: p.Name,
		Rack:   p.rack.String(),
		Action: m.Action().String(),
		Move:   m.ShortDescription(),
	}
}

// resolveTurn hands the turn on and checks whether the game is over.
func (g *Game) resolveTurn(rec TurnRecord, score int) *TurnRecord {
	p := g.curPlayer()
	if score > 0 {
		g.scorelessTurns = 0
	} else {
		g.scorelessTurns++
	}
	rec.Score = score
	rec.Total = p.points
	g.history = append(g.history, rec)

	g.onturn = (g.onturn + 1) % len(g.players)
	g.turnnum++
	g.state = TurnResolved
	g.evaluateGameOver()
	if g.state != GameOver {
		g.state = AwaitingAction
	}
	g.presenter.Render(g.Snapshot())
	return &rec
}

func (g *Game) evaluateGameOver() {
	if g.bag.IsEmpty() && g.curPlayer().rack.Empty() {
		g.endGame(EndedOutOfTiles)
		return
	}
	if g.scorelessTurns < g.rules.scorelessTurnLimit {
		return
	}
	if g.continuer != nil && g.continuer.ContinueAfterScoreless(g.scorelessTurns) {
		log.Debug().Int("scoreless", g.scorelessTurns).Msg("continuing after scoreless turns")
		return
	}
	g.endGame(EndedScoreless)
}

func (g *Game) endGame(reason EndReason) {
	g.state = GameOver
	g.endReason = reason
	log.Info().Str("reason", reason.String()).Str("winner", g.players[g.Winner()].Name).
		Msg("game over")
}

// PlayTurn gets a move from the player on turn and plays it. A human whose
// move is rejected is told why and asked again. A bot whose move is
// rejected passes instead.
func (g *Game) PlayTurn() (*TurnRecord, error) {
	if g.state == GameOver {
		return nil, ErrGameOver
	}
	p := g.curPlayer()
	if p.Kind == KindAutomated {
		m := p.Strategy.ChooseMove(g.Snapshot())
		rec, err := g.PlayMove(m)
		if err == nil {
			return rec, nil
		}
		log.Warn().Err(err).Str("player", p.Name).Msg("bot move rejected, passing")
		g.presenter.Notify(fmt.Sprintf("%s: %v, passing instead", p.Name, err))
		return g.Pass()
	}

	for {
		m, err := p.Supplier.NextMove(g.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("getting move for %s: %w", p.Name, err)
		}
		rec, err := g.PlayMove(m)
		if err == nil {
			return rec, nil
		}
		g.presenter.Notify(err.Error())
	}
}

// Run plays turns until the game ends.
func (g *Game) Run() (Result, error) {
	g.presenter.Render(g.Snapshot())
	for g.state != GameOver {
		if _, err := g.PlayTurn(); err != nil {
			return g.Result(), err
		}
	}
	res := g.Result()
	g.presenter.Notify(summary(res))
	return res, nil
}

func summary(res Result) string {
	var sb strings.Builder
	for i, name := range res.Names {
		fmt.Fprintf(&sb, "%s: %d\n", name, res.Scores[i])
	}
	fmt.Fprintf(&sb, "Winner: %s (%s)", res.WinnerName(), res.Reason)
	return sb.String()
}
