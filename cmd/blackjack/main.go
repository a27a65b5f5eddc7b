package main

import (
	"blackjack-cli/internal/config"
	"blackjack-cli/internal/console"
	"blackjack-cli/internal/rng"
	"blackjack-cli/pkg/blackjack"
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"os"
	"os/signal"
	"strings"
)

// Version is the game version
var Version = "v1.5.0-dev"

var seed = flag.Int64("seed", 0, "shuffle with a fixed seed (0 uses crypto/rand)")
var bankroll = flag.Int("bankroll", 0, "override the starting bankroll")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	opts := blackjack.Options{
		StartingBankroll: cfg.StartingBankroll,
		DealerName:       cfg.DealerName,
	}
	if *bankroll > 0 {
		opts.StartingBankroll = *bankroll
	}

	var gen rng.Generator = rng.Crypto{}
	if *seed != 0 {
		seeded := rng.NewSeeded(*seed)
		logrus.WithField("seed", seeded.Seed()).Info("using seeded shuffle")
		gen = seeded
	}

	// no point pacing the dealer for piped input
	delay := cfg.RevealDelay
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		delay = 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// restore the default handler so a second interrupt kills the process
		<-ctx.Done()
		stop()
	}()

	ui := console.New(ctx, logrus.StandardLogger(), os.Stdin, os.Stdout, delay)
	ui.Welcome(Version)

	game, err := blackjack.NewGame(logrus.StandardLogger(), ui, gen, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	err = game.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, blackjack.ErrInsufficientFunds), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		logrus.WithError(err).Debug("session ended")
	default:
		logrus.WithError(err).Fatal("game failed")
	}

	fmt.Printf("\nThanks for playing, %s. You leave with %d.\n", game.Player().Name, game.Player().Bankroll())
}

func setupLogger() {
	logrus.SetOutput(os.Stderr)

	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
