package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/airhockey/internal/config"
	"github.com/rocketscienceinc/airhockey/internal/entity"
	"github.com/rocketscienceinc/airhockey/internal/repository"
	"github.com/rocketscienceinc/airhockey/internal/repository/storage"
	"github.com/rocketscienceinc/airhockey/internal/transport"
	"github.com/rocketscienceinc/airhockey/internal/transport/audio"
	"github.com/rocketscienceinc/airhockey/internal/transport/terminal"
	"github.com/rocketscienceinc/airhockey/internal/usecase"
	"github.com/rocketscienceinc/airhockey/transport/rest"
	"github.com/rocketscienceinc/airhockey/transport/websocket"
)

// RunApp - runs one air hockey session in the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) (entity.SessionResult, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	renderers := transport.Renderers{}
	tones := transport.TonePlayers{}

	screen, err := terminal.NewScreen()
	if err != nil {
		return entity.SessionResult{}, fmt.Errorf("could not open terminal: %w", err)
	}
	defer screen.Close()

	input := terminal.NewInput()
	screen.Listen(input)
	renderers = append(renderers, terminal.NewRenderer(screen))

	if conf.Game.Sound {
		speaker := audio.NewPlayer(logger)
		if err = speaker.Initialize(); err != nil {
			// the game runs silently without a speaker
			log.Error("Audio initialization failed", "error", err)
		} else {
			defer speaker.Close()
			tones = append(tones, speaker)
		}
	}

	if conf.Spectator.Enabled {
		feed := websocket.New(logger)
		defer feed.Close()
		renderers = append(renderers, feed)
		tones = append(tones, feed)

		go func() {
			log.Info("Starting spectator server", "port", conf.Spectator.Port)
			if httpErr := rest.Start(ctx, conf.Spectator.Port, rest.NewMux(feed)); httpErr != nil {
				log.Error("Spectator server error", "error", httpErr)
			}
		}()
	}

	session, err := usecase.NewSessionManager(
		logger, conf.GameSettings(), input, renderers, tones, usecase.Clock{}, newRandom(conf.Seed),
	)
	if err != nil {
		return entity.SessionResult{}, fmt.Errorf("could not create session: %w", err)
	}
	session.WithInteractiveSetup(conf.Game.InteractiveSetup)

	if conf.Redis.Enabled {
		redisStorage, redisErr := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if redisErr != nil {
			return entity.SessionResult{}, fmt.Errorf("could not connect to redis storage: %w", redisErr)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		session.WithScoreboard(repository.NewScoreboard(redisStorage.Connection, conf.Redis.TTL))
	}

	return session.Run(ctx)
}

// newRandom - returns the one generator shared by strikes and the bot. A zero seed picks one from the clock.
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed))
}
