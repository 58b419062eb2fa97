package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/api"
	"github.com/carson-networks/bank-client/internal/router"
)

func newSandboxCmd(r *root) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run a local in-memory banking backend",
		Long:  "sandbox serves the user, account and transaction services from memory.\nPoint the client at it with the default config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = r.cfg.SandboxPort
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Sandbox listening on :%s\n", port)
			return api.NewSandbox(r.logger, port).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from config)")
	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the pages of the client",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "PATH\tLABEL")
			for _, r := range router.NavRoutes() {
				fmt.Fprintf(tw, "/%s\t%s\n", r.Path, r.Label)
			}
			_ = tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bankctl version %s\n", Version)
		},
	}
}

