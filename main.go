package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/airhockey/internal"
	"github.com/rocketscienceinc/airhockey/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// a .env file is optional
	_ = godotenv.Load()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	result, err := app.RunApp(logger, conf)
	if err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}

	if result.Quit {
		fmt.Println("session quit")
		return
	}

	fmt.Printf("%s wins the session %d:%d\n",
		result.Winner, result.GamesWonByPlayer1, result.GamesWonByPlayer2())
}

// initialize config.
func initConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			panic(err)
		}

		return conf
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal belongs to the game, so logs go to a file unless none is configured.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
