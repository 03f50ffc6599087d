package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-arcade/internal/games/missile"
	"github.com/vovakirdan/missile-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Serve the variant picker to SSH clients.

Every connection runs its own simulation. Finished runs go to the shared
database under the SSH user name, so everyone sees one scoreboard. Sound
stays on the host and is never sent to clients.

Without --host-key a key is generated once at ~/.missile/host_key.

Examples:
  missile serve
  missile serve --ssh :2222 --idle-timeout 10m
  missile serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "host key file (generated when empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "disconnect idle sessions after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if _, err := missile.CheckConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting missile SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx)
}
