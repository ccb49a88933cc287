package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/theme"
)

// InitCmd writes a starter showkey.yaml
type InitCmd struct {
	Defaults bool `help:"Write the defaults without prompting"`
	Force    bool `help:"Overwrite an existing config file" short:"f"`
}

// initAnswers are the values collected by the wizard
type initAnswers struct {
	Categories       bool
	Files            string
	ShowDescriptions bool
	Theme            string
}

// runInitForm asks the user for the starter values
var runInitForm = func(a *initAnswers) error {
	themes := make([]huh.Option[string], 0, len(theme.Names()))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewInput().
				Title("Hyprland config files").
				Description("Comma-separated, relative to " + config.GetHyprConfigDir()).
				Value(&a.Files).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("at least one file is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show descriptions under each keybinding?").
				Value(&a.ShowDescriptions),
			huh.NewConfirm().
				Title("Add the default categories?").
				Description("Screenshots, media, workspaces, windows, session and applications").
				Value(&a.Categories),
		),
	)
	return form.Run()
}

// Run executes the init command
func (i *InitCmd) Run(cli *CLI) error {
	path := cli.Config
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !i.Force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	answers := initAnswers{
		Categories:       true,
		Files:            strings.Join(cfg.HyprlandConfigs.Files, ", "),
		ShowDescriptions: cfg.ShowDescriptions(),
		Theme:            theme.DefaultThemeName,
	}

	if !i.Defaults {
		if err := runInitForm(&answers); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cli.Out, "Aborted, nothing written")
				return nil
			}
			return fmt.Errorf("failed to run setup wizard: %w", err)
		}
		answers.apply(cfg)
	}

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	logging.Logger.Info("Config written", "path", path, "theme", cfg.UI.Theme.Name)
	fmt.Fprintf(cli.Out, "Config written to %s\n", path)
	return nil
}

func (a initAnswers) apply(cfg *config.Config) {
	cfg.UI.Theme.Name = a.Theme
	cfg.UI.ShowDescriptions = &a.ShowDescriptions
	if files := config.StringArray(splitList(a.Files)); len(files) > 0 {
		cfg.HyprlandConfigs.Files = files
	}
	if !a.Categories {
		cfg.Categories = nil
	}
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
