package console

import (
	"blackjack-cli/pkg/blackjack"
	"bufio"
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Console is a blackjack.UI that reads answers from in and writes the table to out
type Console struct {
	ctx    context.Context
	in     *bufio.Scanner
	out    io.Writer
	delay  time.Duration
	sleep  func(time.Duration)
	logger logrus.FieldLogger

	lines    chan inputLine
	scanOnce sync.Once
}

type inputLine struct {
	text string
	err  error
}

// New returns a new Console
// delay is the pause before the deal and before each dealer draw is shown. Use 0 for no pause.
// A pending prompt returns ctx.Err() as soon as ctx is done.
func New(ctx context.Context, logger logrus.FieldLogger, in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{
		ctx:    ctx,
		in:     bufio.NewScanner(in),
		out:    out,
		delay:  delay,
		sleep:  time.Sleep,
		logger: logger,
		lines:  make(chan inputLine),
	}
}

// Welcome prints the banner
func (c *Console) Welcome(version string) {
	c.printf("Welcome to Blackjack %s\n", version)
}

// PromptName implements blackjack.UI
func (c *Console) PromptName() (string, error) {
	c.printf("Please enter your name: ")
	return c.readLine()
}

// PromptBetAmount implements blackjack.UI
// Anything that isn't a whole number is returned as blackjack.ErrInvalidBet.
func (c *Console) PromptBetAmount(bankroll int) (int, error) {
	c.printf("How much would you like to bet? (max %d): ", bankroll)
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	amount, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", blackjack.ErrInvalidBet, line)
	}

	return amount, nil
}

// PromptHitOrStay implements blackjack.UI
func (c *Console) PromptHitOrStay() (blackjack.Action, error) {
	for {
		c.printf("\nWould you like to hit or stay? hit/stay: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		action, err := blackjack.ActionFromString(line)
		if err != nil {
			c.logger.WithError(err).Debug("re-prompting for action")
			continue
		}

		return action, nil
	}
}

// PromptPlayAgain implements blackjack.UI
func (c *Console) PromptPlayAgain() (bool, error) {
	c.printf("\nWould you like to play again? y/n: ")
	line, err := c.readLine()
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

// Render implements blackjack.UI
func (c *Console) Render(event blackjack.Event) {
	switch e := event.(type) {
	case blackjack.Dealing:
		c.printf("\nDealing...\n")
		c.pause()
	case blackjack.DealerHiddenHand:
		cards := []string{"X"}
		for _, card := range e.Visible {
			cards = append(cards, card.String())
		}

		c.printf("\n%s\nCards: [%s]\n", e.Name, strings.Join(cards, " "))
	case blackjack.DealerFullHand:
		if e.Drew != nil {
			c.pause()
		}

		c.printf("\n%s\nCards: %s\nCard Value: %d\n", e.Name, e.Hand.Display(), e.Score)
	case blackjack.PlayerHand:
		c.printf("\n%s\nCards: %s\nCard Value: %d\nMoney: %d, Bet: %d\n", e.Name, e.Hand.Display(), e.Score, e.Bankroll, e.Bet)
	case blackjack.OutcomeMessage:
		c.printf("\n%s\n", e.Message)
	case blackjack.BankrollUpdate:
		c.printf("\nYour money: %d\n", e.Bankroll)
	case blackjack.Notice:
		c.printf("%s\n", e.Message)
	default:
		c.logger.WithField("event", event.EventName()).Warn("unknown event")
	}
}

func (c *Console) readLine() (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}

	c.scanOnce.Do(func() {
		go c.scan()
	})

	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}

		if line.err != nil {
			return "", line.err
		}

		return strings.TrimRight(line.text, "\r\n"), nil
	}
}

// scan feeds lines from in to readLine. The read itself can't be interrupted, so it runs on its own goroutine.
func (c *Console) scan() {
	defer close(c.lines)

	for c.in.Scan() {
		if !c.send(inputLine{text: c.in.Text()}) {
			return
		}
	}

	err := c.in.Err()
	if err == nil {
		err = io.EOF
	}
	c.send(inputLine{err: err})
}

func (c *Console) send(line inputLine) bool {
	select {
	case c.lines <- line:
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (c *Console) pause() {
	if c.delay > 0 {
		c.sleep(c.delay)
	}
}

func (c *Console) printf(format string, a ...interface{}) {
	if _, err := fmt.Fprintf(c.out, format, a...); err != nil {
		c.logger.WithError(err).Error("could not write to console")
	}
}
