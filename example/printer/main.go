package main

import (
	"context"
	"os"

	goobservers "github.com/deadlyengineer/some-observing-with-go"
	"github.com/rs/zerolog"
)

func main() {
	if os.Getenv("PRINTER_VERBOSE") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	ticks := make(chan int, 10)
	for i := 1; i <= 10; i++ {
		ticks <- i
	}
	close(ticks)

	obs := &goobservers.FuncObserver[int]{}

	obs.Start = func() {
		logger.Info().Msg("attached to producer")
	}

	obs.Next = func(elem int) {
		logger.Debug().Int("elem", elem).Msg("received element")

		if elem == 5 {
			logger.Info().Msg("canceling subscription")
			obs.Cancel()
		}
	}

	obs.Error = func(err error) {
		logger.Error().Err(err).Msg("stream failed")
	}

	obs.Complete = func() {
		logger.Info().Msg("stream completed")
	}

	if err := goobservers.Observe(context.Background(), goobservers.FromChannel(ticks), obs); err != nil {
		logger.Fatal().Err(err).Msg("observing failed")
	}
}
