package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render"
)

var (
	flagBackend string
	flagSound   bool
	flagVolume  float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD   - Steer
  Mouse swipe   - Steer
  Space/P       - Pause
  R             - Restart (after game over)
  Ctrl+S        - Save a screenshot
  Q/Esc/Ctrl+C  - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Values from the config file
  hard   - Fast start, frequent speed-up
  fixed  - No speed-up at all

Examples:
  snake play
  snake play --difficulty easy
  snake play --backend tcell
  snake play --sound --volume 0.3
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "bubbletea", "Terminal frontend: bubbletea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (needs a build with -tags sound)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if flagBackend != "bubbletea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want bubbletea or tcell)", flagBackend)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("snake needs an interactive terminal")
	}

	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	if err := render.CheckSurface(rc.ScreenW, rc.ScreenH); err != nil {
		return err
	}
	rc.Seed = flagSeed

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(logFilePath())
	if err != nil {
		return err
	}
	defer closeLog()

	// Continue without storage - game still works
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer(flagVolume)
		if initErr := sound.Init(); initErr != nil {
			logger.Warn("sound disabled", "err", initErr)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	opts := session.Options{
		Config: cfg,
		Seed:   rc.Seed,
		Store:  store,
		Sound:  sound,
		Logger: logger,
	}
	logger.Info("starting game", "backend", flagBackend, "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH), "fps", cfg.Display.FPS)

	switch flagBackend {
	case "tcell":
		err = tcellui.Run(opts)
	default:
		err = tui.Run(opts, rc.ScreenW, rc.ScreenH)
	}
	if err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("bye")
	return nil
}
