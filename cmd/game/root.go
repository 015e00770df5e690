// cmd/game/root.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"apple-game/internal/app"
	"apple-game/internal/config"
	"apple-game/internal/event"
	"apple-game/internal/state"
	"apple-game/internal/ui"
	"apple-game/internal/utils"
)

type options struct {
	configPath string
	envPath    string
	policy     string
	seed       int64
	duration   int
	menu       bool
	pprofAddr  string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	return buildCommand(&options{})
}

// buildCommand binds the flags to opts.
func buildCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "applegame",
		Short:         "Drag across apples that add up to 10 before the time runs out",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return run(settings, opts.pprofAddr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML settings file")
	f.StringVar(&opts.envPath, "env-file", ".env", "dotenv file loaded before reading the environment")
	f.StringVar(&opts.policy, "policy", "", "selection rule: rectangle or path")
	f.Int64Var(&opts.seed, "seed", 0, "board seed (0 picks one)")
	f.IntVar(&opts.duration, "duration", 0, "session length in seconds")
	f.BoolVar(&opts.menu, "menu", false, "start on the title screen")
	f.StringVar(&opts.pprofAddr, "pprof", "", "serve net/http/pprof on this address")
	f.StringVar(&opts.logLevel, "log-level", "", "zerolog level")
	return cmd
}

// loadSettings merges defaults, the settings file, the environment and the
// flags that were set explicitly, in that order.
func loadSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	if err := config.LoadEnv(opts.envPath); err != nil {
		return config.Settings{}, err
	}
	s, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("policy") {
		s.Policy = opts.policy
	}
	if flags.Changed("seed") {
		s.Seed = opts.seed
	}
	if flags.Changed("duration") {
		s.Duration = opts.duration
	}
	if flags.Changed("menu") {
		s.StartInMenu = opts.menu
	}
	if flags.Changed("log-level") {
		s.LogLevel = opts.logLevel
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func run(settings config.Settings, pprofAddr string) error {
	setupLogging(settings.LogLevel)

	if pprofAddr != "" {
		go func() {
			log.Info().Str("addr", pprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				log.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	dispatcher := event.NewDispatcher()
	app.NewLogListener(log.Logger).Attach(dispatcher)

	session, err := app.NewGame(settings, utils.NewPRNGService(settings.Seed), dispatcher)
	if err != nil {
		return err
	}
	faces, err := ui.LoadFaces()
	if err != nil {
		return err
	}

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, session, ui.NewLayout(settings.GridSize), faces, dispatcher)
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, gameState, faces))
	} else {
		sm.SetState(gameState)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info().Int("score", session.Score()).Msg("bye")
	return nil
}
