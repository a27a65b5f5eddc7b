package blackjack

import (
	"blackjack-cli/internal/rng"
	"blackjack-cli/internal/util"
	"blackjack-cli/pkg/deck"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"strings"
)

// Game is a session of single-player blackjack
type Game struct {
	options Options
	player  *Player
	dealer  *Dealer
	deck    *deck.Deck
	ui      UI
	gen     rng.Generator
	logger  logrus.FieldLogger

	state  RoundState
	rounds int
}

// RoundResult is the summary of a single round
type RoundResult struct {
	ID          string  `json:"id"`
	Outcome     Outcome `json:"outcome"`
	PlayerScore int     `json:"playerScore"`
	DealerScore int     `json:"dealerScore"`
	Bet         int     `json:"bet"`
	Credit      int     `json:"credit"`
	Bankroll    int     `json:"bankroll"`
}

// NewGame returns a new game
// If gen is nil, a crypto/rand backed generator is used. If logger is nil, the standard logger is used.
func NewGame(logger logrus.FieldLogger, ui UI, gen rng.Generator, options Options) (*Game, error) {
	if ui == nil {
		return nil, errors.New("game requires a ui")
	}

	if options.StartingBankroll < 0 {
		return nil, errors.New("starting bankroll must be >= 0")
	}

	if options.StartingBankroll > MaxBankroll {
		return nil, fmt.Errorf("starting bankroll must be <= %d", MaxBankroll)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if options.DealerName == "" {
		options.DealerName = DefaultOptions().DealerName
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Game{
		options: options,
		player:  NewPlayer("", options.StartingBankroll),
		dealer:  NewDealer(options.DealerName),
		deck:    deck.New(gen),
		ui:      ui,
		gen:     gen,
		logger:  logger,
		state:   StateBetting,
	}, nil
}

// Player returns the player
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the dealer
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// State returns the current state of the engine
func (g *Game) State() RoundState {
	return g.state
}

// Rounds returns the number of rounds that have been settled
func (g *Game) Rounds() int {
	return g.rounds
}

// Run asks for the player's name and plays rounds until the player quits
// A player who runs out of money ends the session with ErrInsufficientFunds.
func (g *Game) Run(ctx context.Context) error {
	name, err := g.ui.PromptName()
	if err != nil {
		return fmt.Errorf("could not get player name: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = util.GetRandomName(g.gen)
	}
	g.player.Name = name

	defer func() {
		g.state = StateFinished
	}()

	for {
		if _, err := g.PlayRound(ctx); err != nil {
			if errors.Is(err, ErrInsufficientFunds) {
				g.ui.Render(Notice{Message: "You are out of money."})
			}

			return err
		}

		again, err := g.ui.PromptPlayAgain()
		if err != nil {
			return err
		}

		if !again {
			g.logger.WithFields(logrus.Fields{
				"player":   g.player.Name,
				"rounds":   g.rounds,
				"bankroll": g.player.Bankroll(),
			}).Info("session finished")
			return nil
		}
	}
}

// PlayRound plays a single round from betting through settlement
func (g *Game) PlayRound(ctx context.Context) (*RoundResult, error) {
	id := uuid.New().String()
	log := g.logger.WithFields(logrus.Fields{
		"round":  id,
		"player": g.player.Name,
	})

	g.player.Reset()
	g.dealer.Reset()

	g.state = StateBetting
	if err := g.collectBet(ctx); err != nil {
		return nil, err
	}
	log.WithField("bet", g.player.Bet()).Debug("bet placed")

	g.state = StateDealing
	if err := g.deal(); err != nil {
		g.abort(log, err)
		return nil, err
	}
	g.ui.Render(Dealing{})
	log.WithFields(logrus.Fields{
		"playerHand": g.player.Hand.String(),
		"dealerHand": g.dealer.Hand.String(),
	}).Debug("cards dealt")

	g.state = StateNaturalCheck
	outcome, err := g.resolve(ctx)
	if err != nil {
		g.abort(log, err)
		return nil, err
	}

	g.state = StateSettlement
	result := g.settle(id, outcome)
	log.WithFields(logrus.Fields{
		"outcome":     result.Outcome.String(),
		"playerScore": result.PlayerScore,
		"dealerScore": result.DealerScore,
		"credit":      result.Credit,
		"bankroll":    result.Bankroll,
	}).Info("round settled")

	return result, nil
}

// abort hands the bet back when a round can't be finished
func (g *Game) abort(log logrus.FieldLogger, err error) {
	refund := g.player.Refund()
	log.WithError(err).WithField("refund", refund).Warn("round aborted")
}

// collectBet prompts until the player places a valid bet
func (g *Game) collectBet(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !g.player.CanBet() {
			return fmt.Errorf("%w: bankroll is %d", ErrInsufficientFunds, g.player.Bankroll())
		}

		g.ui.Render(BankrollUpdate{Bankroll: g.player.Bankroll()})
		amount, err := g.ui.PromptBetAmount(g.player.Bankroll())
		if err == nil {
			err = g.player.PlaceBet(amount)
		}

		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrInvalidBet), errors.Is(err, ErrInsufficientFunds):
			g.ui.Render(Notice{Message: err.Error()})
		default:
			return err
		}
	}
}

// deal shuffles a fresh deck and deals two cards to the player, then two to the dealer
func (g *Game) deal() error {
	g.deck.Shuffle(true)
	if !g.deck.CanDraw(4) {
		return deck.ErrEmptyDeck
	}

	for _, hand := range []*deck.Hand{&g.player.Hand, &g.player.Hand, &g.dealer.Hand, &g.dealer.Hand} {
		if err := g.dealTo(hand); err != nil {
			return err
		}
	}

	return nil
}

func (g *Game) dealTo(hand *deck.Hand) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}

	hand.AddCard(card)
	return nil
}

// resolve runs the natural check and both turns, and returns the outcome
func (g *Game) resolve(ctx context.Context) (Outcome, error) {
	if g.player.Hand.IsNatural() {
		g.ui.Render(g.playerHandEvent())
		return OutcomeNatural, nil
	}

	g.ui.Render(DealerHiddenHand{
		Name:    g.dealer.Name,
		Visible: g.dealer.Hand[1:].Clone(),
	})
	g.ui.Render(g.playerHandEvent())

	g.state = StatePlayerTurn
	if err := g.playerTurn(ctx); err != nil {
		return 0, err
	}

	if g.player.Hand.IsBust() {
		g.ui.Render(g.playerHandEvent())
		return OutcomeBust, nil
	}

	g.state = StateDealerTurn
	return g.dealerTurn()
}

// playerTurn returns once the player stays or busts
func (g *Game) playerTurn(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := g.ui.PromptHitOrStay()
		if err != nil {
			return err
		}

		switch action {
		case ActionStay:
			return nil
		case ActionHit:
			if err := g.dealTo(&g.player.Hand); err != nil {
				return err
			}

			if g.player.Hand.IsBust() {
				return nil
			}

			g.ui.Render(g.playerHandEvent())
		default:
			g.ui.Render(Notice{Message: fmt.Sprintf("unknown action: %s", action)})
		}
	}
}

// dealerTurn reveals the dealer's hand and draws to 17
func (g *Game) dealerTurn() (Outcome, error) {
	g.ui.Render(g.dealerHandEvent(nil))

	for g.dealer.ShouldHit() {
		if err := g.dealTo(&g.dealer.Hand); err != nil {
			return 0, err
		}

		g.ui.Render(g.dealerHandEvent(g.dealer.Hand.LastCard()))
	}

	if g.dealer.Hand.IsBust() {
		return OutcomeDealerBust, nil
	}

	return compareScores(g.player.Hand.Score(), g.dealer.Hand.Score()), nil
}

func (g *Game) settle(id string, outcome Outcome) *RoundResult {
	bet := g.player.Bet()
	credit := g.player.Settle(outcome)
	g.rounds++

	g.ui.Render(OutcomeMessage{
		Outcome: outcome,
		Message: outcome.Message(g.player.Name),
	})
	g.ui.Render(BankrollUpdate{Bankroll: g.player.Bankroll()})

	return &RoundResult{
		ID:          id,
		Outcome:     outcome,
		PlayerScore: g.player.Hand.Score(),
		DealerScore: g.dealer.Hand.Score(),
		Bet:         bet,
		Credit:      credit,
		Bankroll:    g.player.Bankroll(),
	}
}

func (g *Game) playerHandEvent() PlayerHand {
	return PlayerHand{
		Name:     g.player.Name,
		Hand:     g.player.Hand.Clone(),
		Score:    g.player.Hand.Score(),
		Bankroll: g.player.Bankroll(),
		Bet:      g.player.Bet(),
	}
}

func (g *Game) dealerHandEvent(drew *deck.Card) DealerFullHand {
	return DealerFullHand{
		Name:  g.dealer.Name,
		Hand:  g.dealer.Hand.Clone(),
		Score: g.dealer.Hand.Score(),
		Drew:  drew,
	}
}
