// Package cli implements bankctl, a terminal front end for the banking client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-client/internal/app"
	"github.com/carson-networks/bank-client/internal/config"
	"github.com/carson-networks/bank-client/internal/httpclient"
	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/session"
	"github.com/carson-networks/bank-client/internal/views"
)

var Version = "dev"

var (
	// errReported means the failure was already shown to the user as a message.
	errReported     = errors.New("request failed")
	errInvalidInput = errors.New("invalid input")
	errNotSignedIn  = errors.New("not signed in: run `bankctl signin` first")
)

// reportingMessenger prints messages and remembers whether an error was shown.
type reportingMessenger struct {
	views.WriterMessenger
	failed bool
}

func (m *reportingMessenger) Error(msg string) {
	m.failed = true
	m.WriterMessenger.Error(msg)
}

// root is the state shared by every command of one invocation.
type root struct {
	configPath  string
	logLevel    string
	sessionFile string

	// httpClient overrides the transport, for tests.
	httpClient httpclient.Doer

	cfg      *config.Config
	logger   *logrus.Logger
	store    session.Store
	messages *reportingMessenger
	app      *app.App
}

// NewRootCmd builds the bankctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&root{})
}

func newRootCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bankctl",
		Short:         "Banking client for the terminal",
		Long:          "bankctl signs in to the banking services, lists accounts, opens new ones,\ntransfers money and exports statements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if r.messages != nil && r.messages.failed {
				return errReported
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&r.configPath, "config", "c", os.Getenv("BANK_CONFIG_FILE"), "YAML config file")
	flags.StringVar(&r.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&r.sessionFile, "session-file", "", "Where the session token is kept")

	cmd.AddCommand(
		newSignInCmd(r),
		newSignUpCmd(r),
		newSignOutCmd(r),
		newProfileCmd(r),
		newDashboardCmd(r),
		newAccountsCmd(r),
		newCreateAccountCmd(r),
		newTransferCmd(r),
		newStatementsCmd(r),
		newRoutesCmd(),
		newShellCmd(r),
		newSandboxCmd(r),
		newVersionCmd(),
	)

	return cmd
}

func (r *root) setup(out, errOut io.Writer) error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(&config.Config{LogLevel: r.logLevel, SessionFile: r.sessionFile})
	r.cfg = cfg

	r.logger = logging.SetupLoggingTo(errOut, cfg.LogLevel)
	r.store = session.NewFileStore(cfg.SessionFile)
	r.messages = &reportingMessenger{WriterMessenger: views.WriterMessenger{Out: out}}

	doer := r.httpClient
	if doer == nil {
		doer = http.DefaultClient
	}
	client := httpclient.New(doer, func() string { return session.Token(r.store) }, r.logger)

	r.app = app.New(app.Options{
		Service:    service.NewService(client, cfg),
		Session:    r.store,
		Messenger:  r.messages,
		Downloader: views.DirDownloader{Dir: cfg.StatementDir},
		Logger:     r.logger,
	})
	return nil
}

// open navigates to path and returns the page's view. Landing anywhere else
// means the guard redirected, which for a protected page means no valid session.
func open[T views.View](ctx context.Context, r *root, path string, params ...router.Param) (T, error) {
	var zero T
	if err := r.app.Navigate(ctx, path, params...); err != nil {
		return zero, err
	}
	if v, ok := r.app.Current.Get().(T); ok {
		return v, nil
	}

	landed := r.app.Router.Current().Path
	switch {
	case landed == router.PathSignIn:
		return zero, errNotSignedIn
	case router.IsAuthPage(path):
		return zero, errors.New("already signed in: run `bankctl signout` first")
	default:
		return zero, fmt.Errorf("redirected to %q", landed)
	}
}

// Execute runs bankctl and reports failures on stderr.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}
