package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/platform/tui"
)

var (
	flagSSHAddr    string
	flagSSHHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect with any SSH client.
Every session gets the menu; scores go to the shared database.

Examples:
  kokaton serve
  kokaton serve --ssh :2222
  kokaton serve --host-key ./host_key

Connect with:
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagSSHHostKey, "host-key", "", "Path to SSH host key (default: ~/.arcade/host_key)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr).WithPrefix("kokaton-ssh")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagSSHHostKey

	srv, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
