package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/audio"
	"github.com/vovakirdan/snake-ultra/internal/platform/tui"
	"github.com/vovakirdan/snake-ultra/internal/session"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing snake.

Controls:
  Arrows/WASD  - Steer
  Space        - Pause/resume
  Enter/R      - Start, or play again after game over
  M            - Toggle sound
  +/-          - Volume up/down
  T            - Stats (when not running)
  ` + "`" + `            - Debug line
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 150ms per move, speeds up with each level
  normal - 100ms per move, speeds up with each level
  hard   - 60ms per move, speeds up with each level
  fixed  - 100ms per move, no speed-up

Without --difficulty a selector is shown, starting on the last choice.

Examples:
  snake play
  snake play --difficulty hard
  snake play --mute --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound for this run")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	preset := parseDifficulty(flagDifficulty)

	logger, closeLog := newLogger()
	defer closeLog()

	// Continue without storage - game still works
	store := openStore(logger)

	if preset == "" {
		chosen, ok, err := tui.RunDifficultySelector(runtimeConfig(), session.StoredSpeed(store, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the selector
		if !ok {
			if store != nil {
				store.Close()
			}
			return
		}
		preset = chosen
	}

	var sink audio.Sink = audio.SilentSink{}
	if !flagMute {
		sink = audio.NewSpeakerSink(logger)
	}

	sess := session.New(session.Options{
		Config:     cfg,
		Store:      store,
		Sink:       sink,
		Difficulty: preset,
		Seed:       flagSeed,
		Mute:       flagMute,
		Logger:     logger,
	})

	runErr := tui.Run(sess)

	// Close store before potential exit
	if err := sess.Close(); err != nil {
		logger.Warn("failed to close session", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
