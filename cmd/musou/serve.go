package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/games/musou"
	"github.com/vovakirdan/musou/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the musou SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, sized to its terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.musou/host_key

Examples:
  musou serve                           # Listen on :23234 with auto-generated key
  musou serve --ssh :2222               # Listen on port 2222
  musou serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default 30)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.TickRate = cfg.Arena.TickRate
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	newGame := func() core.Game { return musou.New(cfg) }

	server, err := tui.NewSSHServer(srvCfg, newGame, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe(ctx)
}
