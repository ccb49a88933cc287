package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hypr-showkey/showkey/internal/adapters/clipboard"
	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/services"
	"github.com/hypr-showkey/showkey/internal/theme"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Config      string           `help:"Path to showkey.yaml (default: SHOWKEY_CONFIG, then the user config dir)" short:"c" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Version     kong.VersionFlag `help:"Show version information"`

	Run    RunCmd    `cmd:"" help:"Browse keybindings interactively (default)" default:"1"`
	Check  CheckCmd  `cmd:"check" help:"Load the Hyprland configs and report what was found"`
	Export ExportCmd `cmd:"export" help:"Export a cheat sheet grouped by category"`
	Init   InitCmd   `cmd:"init" help:"Create a starter showkey.yaml"`
	Keys   KeysCmd   `cmd:"keys" help:"List the TUI key bindings (defaults and custom)"`
	List   ListCmd   `cmd:"list" help:"List keybindings without the TUI"`
	Serve  ServeCmd  `cmd:"serve" help:"Serve the keybinding viewer over SSH"`
	Stats  StatsCmd  `cmd:"stats" help:"Show the most copied keybindings"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
	Out       io.Writer  `kong:"-"`
	cfg       *config.Config
	cfgErr    error
}

// AfterApply loads the config, initializes logging and creates the container
func (c *CLI) AfterApply() error {
	if c.Out == nil {
		c.Out = os.Stdout
	}

	// A broken config must not stop `init --force` from replacing it,
	// so the error is kept and returned by LoadConfig
	c.cfg, c.cfgErr = c.readConfig()

	// Apply settings with proper precedence: CLI flags > env vars > showkey.yaml > defaults
	if c.cfg != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv && c.cfg.MaxLogFiles != nil {
				c.MaxLogFiles = *c.cfg.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv && c.cfg.Debug != nil {
				c.Debug = *c.cfg.Debug
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if c.cfgErr != nil {
		logging.Logger.Warn("Failed to load config", "error", c.cfgErr)
	} else {
		logging.Logger.Info("Config resolved", "path", c.cfg.Path())
	}

	// Container is created after logging so the gorm logger has a target
	c.Container = NewContainer()
	return nil
}

// readConfig loads --config, or searches the default locations.
// Without --config a missing file falls back to the built-in defaults.
func (c *CLI) readConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err == nil {
		return cfg, nil
	}
	if c.Config == "" && errors.Is(err, domain.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return nil, err
}

// LoadConfig returns the config resolved in AfterApply
func (c *CLI) LoadConfig() (*config.Config, error) {
	if c.cfg == nil && c.cfgErr == nil {
		c.cfg, c.cfgErr = c.readConfig()
	}
	return c.cfg, c.cfgErr
}

// LoadCatalog loads the config and the keybinding store it points at.
// When no Hyprland file could be read the empty store and report are
// returned together with the error.
func (c *CLI) LoadCatalog(ctx context.Context) (*config.Config, *domain.BindingStore, domain.IngestReport, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, nil, domain.IngestReport{}, err
	}

	store, report, err := c.Container.CatalogService.Load(ctx, cfg.ResolveHyprlandPaths(), cfg.CategoryRules())
	if err != nil {
		return cfg, store, report, err
	}
	return cfg, store, report, nil
}

// LoadBindings is LoadCatalog for the viewing commands: when no Hyprland
// file could be read they continue on the empty store.
func (c *CLI) LoadBindings(ctx context.Context) (*config.Config, *domain.BindingStore, domain.IngestReport, error) {
	cfg, store, report, err := c.LoadCatalog(ctx)
	if errors.Is(err, domain.ErrNoConfigFiles) {
		logging.Logger.Warn("No Hyprland config could be read", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return cfg, store, report, nil
	}
	return cfg, store, report, err
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// SearchFlags override the search settings of showkey.yaml
type SearchFlags struct {
	MaxResults int     `help:"Maximum number of results (0 = unlimited, -1 = from config)" default:"-1"`
	Threshold  float64 `help:"Minimum fuzzy score in [0,1] (-1 = from config)" default:"-1"`
}

// searchService builds the search service from flags and config
func (f SearchFlags) searchService(cfg *config.Config, includeDescription bool) *services.SearchService {
	opts := services.SearchOptions{
		IncludeDescription: includeDescription,
		MaxResults:         cfg.MaxResults(),
		Threshold:          cfg.SearchThreshold(),
	}
	if f.MaxResults >= 0 {
		opts.MaxResults = f.MaxResults
	}
	if f.Threshold >= 0 {
		opts.Threshold = f.Threshold
	}
	search := services.NewSearchService(opts)
	effective := search.Options()
	logging.Logger.Debug("Search configured",
		"includeDescription", effective.IncludeDescription,
		"maxResults", effective.MaxResults,
		"threshold", effective.Threshold)
	return search
}

// uiOptions resolves the theme and key bindings shared by run and serve
func uiOptions(cfg *config.Config) (ui.Options, error) {
	if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return ui.Options{}, fmt.Errorf("invalid key bindings in showkey.yaml: %w", err)
	}

	palette, err := cfg.UI.Theme.Palette()
	if err != nil {
		return ui.Options{}, fmt.Errorf("invalid theme in showkey.yaml: %w", err)
	}

	return ui.Options{
		Keys:             cfg.Keys,
		NoticeDelay:      ui.DefaultNoticeDelay,
		ShowDescriptions: cfg.ShowDescriptions(),
		ShowRaw:          cfg.ShowRawCommand(),
		Styles:           theme.NewStyles(palette),
	}, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	SearchFlags `embed:""`

	NoHistory bool   `help:"Do not record copied bindings in the usage history"`
	Query     string `help:"Initial search query" short:"q"`
	Raw       bool   `help:"Show the raw bind directive in the status bar"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting showkey TUI")

	cfg, store, report, err := cli.LoadBindings(context.Background())
	if err != nil {
		return err
	}

	opts, err := uiOptions(cfg)
	if err != nil {
		return err
	}
	opts.Clipboard = clipboard.NewSystemClipboard()
	opts.InitialQuery = r.Query
	opts.Report = report
	opts.ShowRaw = opts.ShowRaw || r.Raw

	if !r.NoHistory {
		usage, err := cli.Container.UsageService()
		if err != nil {
			// History is optional; the viewer still works without it
			logging.Logger.Warn("Usage history disabled", "error", err)
		} else {
			opts.Usage = usage
		}
	}

	search := r.searchService(cfg, true)

	logging.Logger.Debug("Initializing Bubble Tea program", "bindings", store.Len())
	p := tea.NewProgram(
		ui.NewModel(store, search, opts),
		tea.WithAltScreen(),
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Logger.Info("TUI program exited normally")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := opts.Usage.Flush(ctx); err != nil {
		logging.Logger.Warn("Failed to save usage history", "error", err)
	}
	return nil
}
