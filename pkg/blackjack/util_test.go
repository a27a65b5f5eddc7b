package blackjack

import (
	"blackjack-cli/pkg/deck"
	"context"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"io"
	"testing"
)

// stackedGen drives deck.Shuffle and deck.Draw so that each round deals exactly the listed cards
// Shuffles keep the deck in its created order, and each draw picks the index of the next wanted card.
type stackedGen struct {
	t         *testing.T
	prefix    []int
	rounds    [][]*deck.Card
	shuffling int
	pool      []*deck.Card
	draws     []*deck.Card
}

func newStackedGen(t *testing.T, rounds ...string) *stackedGen {
	s := &stackedGen{t: t}
	for _, r := range rounds {
		s.rounds = append(s.rounds, deck.CardsFromString(r))
	}

	return s
}

// withPrefix makes the first calls return values verbatim, before any round is dealt
func (s *stackedGen) withPrefix(values ...int) *stackedGen {
	s.prefix = values
	return s
}

func (s *stackedGen) Intn(n int) int {
	if len(s.prefix) > 0 {
		v := s.prefix[0]
		s.prefix = s.prefix[1:]
		return v % n
	}

	if s.shuffling == 0 && len(s.draws) == 0 {
		if len(s.rounds) == 0 {
			s.t.Fatalf("no more stacked rounds, got Intn(%d)", n)
		}

		s.draws = s.rounds[0]
		s.rounds = s.rounds[1:]
		s.pool = deck.New(nil).Cards
		s.shuffling = len(s.pool)
	}

	if s.shuffling > 0 {
		s.shuffling--
		return 0
	}

	if n != len(s.pool) {
		s.t.Fatalf("expected Intn(%d), got Intn(%d)", len(s.pool), n)
	}

	want := s.draws[0]
	s.draws = s.draws[1:]
	for i, c := range s.pool {
		if *c == *want {
			s.pool = append(s.pool[:i], s.pool[i+1:]...)
			return i
		}
	}

	s.t.Fatalf("card %s is not in the deck", want)
	return 0
}

type betAnswer struct {
	amount int
	err    error
}

// scriptedUI answers prompts from a script and records every rendered event
// Once a script runs out, the prompt returns io.EOF.
type scriptedUI struct {
	name    string
	bets    []betAnswer
	actions []Action
	again   []bool
	events  []Event
}

func (s *scriptedUI) PromptName() (string, error) {
	return s.name, nil
}

func (s *scriptedUI) PromptBetAmount(int) (int, error) {
	if len(s.bets) == 0 {
		return 0, io.EOF
	}

	b := s.bets[0]
	s.bets = s.bets[1:]
	return b.amount, b.err
}

func (s *scriptedUI) PromptHitOrStay() (Action, error) {
	if len(s.actions) == 0 {
		return 0, io.EOF
	}

	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptedUI) PromptPlayAgain() (bool, error) {
	if len(s.again) == 0 {
		return false, io.EOF
	}

	a := s.again[0]
	s.again = s.again[1:]
	return a, nil
}

func (s *scriptedUI) Render(event Event) {
	s.events = append(s.events, event)
}

func (s *scriptedUI) eventNames() []string {
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = e.EventName()
	}

	return names
}

func (s *scriptedUI) notices() []string {
	var notices []string
	for _, e := range s.events {
		if n, ok := e.(Notice); ok {
			notices = append(notices, n.Message)
		}
	}

	return notices
}

// cancelingUI cancels the context the first time the player is asked to hit or stay
type cancelingUI struct {
	*scriptedUI
	cancel context.CancelFunc
}

func (c *cancelingUI) PromptHitOrStay() (Action, error) {
	c.cancel()
	return 0, context.Canceled
}

func bet(amount int) betAnswer {
	return betAnswer{amount: amount}
}

func newTestGame(t *testing.T, ui *scriptedUI, rounds ...string) (*Game, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	game, err := NewGame(logger, ui, newStackedGen(t, rounds...), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	game.player.Name = ui.name
	return game, hook
}
