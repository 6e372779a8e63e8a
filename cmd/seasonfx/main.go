package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seasonfx/internal/config"
	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/prefs"
	"seasonfx/internal/season"
	"seasonfx/internal/utils"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Options struct {
	ConfigPath string
	PrefsPath  string
	LogLevel   utils.LogLevel
	Debug      bool
	Overlay    bool
	Width      int
	Height     int
	FPS        int
	Mode       string
}

func main() {
	opts := Options{LogLevel: utils.LevelWarn}

	rootCmd := &cobra.Command{
		Use:   "seasonfx",
		Short: "Seasonal particle layer for the desktop",
		Long: `seasonfx draws falling petals, dandelion seeds, leaves or ice crystals
over soft glow orbs. The season follows the calendar unless a mode has
been chosen with the on-screen controls, the number keys or "seasonfx mode set".`,
		Example: `  # Run in a window
  seasonfx

  # Cover the desktop with a click-through overlay
  seasonfx --overlay

  # Preview winter without changing the stored preference
  seasonfx --mode winter

  # Store a preference for the next run
  seasonfx mode set autumn`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "Path to config.toml (default: XDG config dir)")
	pf.StringVar(&opts.PrefsPath, "prefs", "", "Path to the preference store (default: XDG state dir)")
	pf.Var(&opts.LogLevel, "log-level", "Log level: debug, info, warn, error")
	pf.BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging and the F8 inspector")

	f := rootCmd.Flags()
	f.BoolVar(&opts.Overlay, "overlay", false, "Draw over the desktop in a transparent click-through window")
	f.IntVar(&opts.Width, "width", 0, "Window width (window mode)")
	f.IntVar(&opts.Height, "height", 0, "Window height (window mode)")
	f.IntVar(&opts.FPS, "fps", 0, "Target frame rate, 0 for the config value")
	f.StringVar(&opts.Mode, "mode", "", "Preference for this run only: auto, spring, summer, autumn, winter, none")

	rootCmd.AddCommand(modeCmd(&opts))
	rootCmd.AddCommand(pickCmd(&opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func setupLogging(opts Options) error {
	utils.CurrentLevel = opts.LogLevel
	if opts.Debug {
		utils.CurrentLevel = utils.LevelDebug
	}
	return nil
}

// previewToken normalizes a --mode value to its control token. An empty value
// means no preview.
func previewToken(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	pref, err := season.ParsePreference(value)
	if err != nil {
		return "", errors.Wrap(err, "--mode")
	}
	return string(pref), nil
}

func loadConfig(cmd *cobra.Command, opts Options) (*config.Config, string, error) {
	path, err := utils.ResolveConfigPath(opts.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("overlay") {
		cfg.Window.Overlay = opts.Overlay
	}
	if flags.Changed("width") {
		cfg.Window.Width = opts.Width
	}
	if flags.Changed("height") {
		cfg.Window.Height = opts.Height
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = opts.FPS
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", errors.Wrap(err, "flags")
	}
	return cfg, path, nil
}

func openStore(opts Options) (*prefs.FileStore, error) {
	path, err := utils.ResolvePrefsPath(opts.PrefsPath)
	if err != nil {
		return nil, err
	}
	return prefs.Open(path)
}

func run(cmd *cobra.Command, opts Options) error {
	utils.Info("--- seasonfx start ---")

	cfg, cfgPath, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	tables, err := cfg.Tables()
	if err != nil {
		return err
	}
	store, err := openStore(opts)
	if err != nil {
		return err
	}

	preview, err := previewToken(opts.Mode)
	if err != nil {
		return err
	}

	window := NewWindow(WindowOptions{
		Config:     cfg,
		ConfigPath: cfgPath,
		Tables:     tables,
		Store:      store,
		Clock:      season.SystemClock{},
		Preview:    preview,
	})
	if opts.Debug {
		utils.ShowDebugUI = true
	}
	return window.Run(cmd.Context())
}

// tablesOrDefault is for commands that only need pool information.
func tablesOrDefault(cfg *config.Config) particle.Tables {
	t, err := cfg.Tables()
	if err != nil {
		return particle.DefaultTables()
	}
	return t
}
