package cmd

import (
	"context"
	"fmt"

	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/server"
)

// ServeCmd serves the viewer over SSH
type ServeCmd struct {
	SearchFlags `embed:""`

	AuthorizedKeys string `help:"authorized_keys file used for public key authentication (default: ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost"`
	HostKey        string `help:"SSH host key path, created when missing (default: <data dir>/ssh/id_ed25519)" type:"path"`
	NoHistory      bool   `help:"Do not record copied bindings in the usage history"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	cfg, store, report, err := cli.LoadBindings(context.Background())
	if err != nil {
		return err
	}

	opts, err := uiOptions(cfg)
	if err != nil {
		return err
	}
	opts.Report = report

	if !s.NoHistory {
		usage, err := cli.Container.UsageService()
		if err != nil {
			logging.Logger.Warn("Usage history disabled", "error", err)
		} else {
			opts.Usage = usage
		}
	}

	serverCfg := server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyPath:        s.HostKey,
		Port:               s.Port,
	}
	if serverCfg.AuthorizedKeysPath == "" {
		serverCfg.AuthorizedKeysPath = config.GetAuthorizedKeysPath()
	}
	if serverCfg.HostKeyPath == "" {
		serverCfg.HostKeyPath = config.GetHostKeyPath()
	}

	srv, err := server.NewServer(serverCfg, store, s.searchService(cfg, true), opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(context.Background())
}
