package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/opomo/internal/config"
	"github.com/npratt/opomo/internal/shutdown"
	"github.com/npratt/opomo/internal/timer"
	"github.com/npratt/opomo/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("OPOMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "opomo",
		Short: "Pomodoro in the command line",
		Long: `opomo runs work/break interval cycles with a full-screen terminal
countdown. Pause with p, skip the current phase with s, quit with q.

Durations accept Go syntax ("25m", "1h30m", "90s"). With --late, one last
break runs after the final work phase instead of ending immediately.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			// Load config from files with defaults
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagWork) {
				cfg.Timer.Work = viper.GetDuration(FlagWork)
			}
			if cmd.Flags().Changed(FlagBreak) {
				cfg.Timer.Break = viper.GetDuration(FlagBreak)
			}
			if cmd.Flags().Changed(FlagCycles) {
				cfg.Timer.Cycles = viper.GetInt(FlagCycles)
			}
			if cmd.Flags().Changed(FlagLate) {
				cfg.Timer.Late = viper.GetBool(FlagLate)
			}
			if cmd.Flags().Changed(FlagBigDigits) {
				cfg.UI.BigDigits = viper.GetBool(FlagBigDigits)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			// The run flag is shared between the signal handler, the quit
			// action, and the tick loop.
			runFlag := shutdown.NewFlag()
			stop := shutdown.Arm(logger, runFlag)
			defer stop()

			// TUI mode: redirect logging to a rotating file so frames stay
			// clean. Without a TTY the fallback printer keeps stderr logging.
			appLogger := logger
			if term.IsTerminal(int(os.Stdout.Fd())) {
				tuiLogResult, err := SetupTUILogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
				if err != nil {
					return fmt.Errorf("setup debug log: %w", err)
				}
				defer func() { _ = tuiLogResult.Close() }()
				appLogger = tuiLogResult.Logger
				slog.SetDefault(appLogger)
			}

			appLogger.Info("opomo starting",
				"version", version,
				"work", cfg.Timer.Work,
				"break", cfg.Timer.Break,
				"cycles", cfg.Timer.Cycles,
				"late", cfg.Timer.Late,
			)

			ctrl := timer.New(cfg.Timer, runFlag, time.Now(),
				timer.WithBell(os.Stdout, cfg.UI.CueDelay),
				timer.WithLogger(appLogger))

			app := tui.New(ctrl,
				tui.WithPollInterval(cfg.UI.PollInterval),
				tui.WithBigDigits(cfg.UI.BigDigits))

			if err := app.Run(); err != nil {
				return fmt.Errorf("run timer: %w", err)
			}

			fmt.Println("Exiting...")
			time.Sleep(500 * time.Millisecond)
			fmt.Println("See you next time!")
			return nil
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .opomo/config.yaml)")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Timer flags
	rootCmd.Flags().Duration(FlagWork, 25*time.Minute, "Work phase duration")
	rootCmd.Flags().Duration(FlagBreak, 5*time.Minute, "Break phase duration")
	rootCmd.Flags().Int(FlagCycles, 4, "Number of work/break cycles")
	rootCmd.Flags().Bool(FlagLate, false, "Run one last break after the final work phase")
	rootCmd.Flags().Bool(FlagBigDigits, true, "Render the countdown with block glyphs")

	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("opomo %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
