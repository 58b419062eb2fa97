package views

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/httpclient"
	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/router"
	"github.com/carson-networks/bank-client/internal/session"
)

const (
	msgLoadAccountsFailed   = "Error loading accounts. Please try again."
	msgLoadStatementsFailed = "Error loading statements. Please try again."
	msgDownloadFailed       = "Error downloading statement. Please try again."
)

// ErrNotSignedIn is returned when a view needs a session and none is stored.
var ErrNotSignedIn = errors.New("views: not signed in")

// Messenger shows blocking user-facing messages.
type Messenger interface {
	Success(msg string)
	Error(msg string)
}

// View is a page controller constructed on navigation.
type View interface {
	Init(ctx context.Context)
}

// Deps are the collaborators every view shares.
type Deps struct {
	Nav        router.Navigator
	Session    session.Store
	Messenger  Messenger
	Downloader Downloader
	Logger     *logrus.Logger
	Now        func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) logData(view string) *logging.LogData {
	logData := logging.NewLogData(d.Logger)
	logData.AddData("view", view)
	return logData
}

// requireToken sends the user to sign-in when no token is stored.
func (d Deps) requireToken(ctx context.Context) error {
	if session.IsAuthenticated(d.Session) {
		return nil
	}
	if err := d.Nav.Go(ctx, router.PathSignIn); err != nil {
		return err
	}
	return ErrNotSignedIn
}

// failureText is the server's message when a response carried one, else fallback.
func failureText(err error, fallback string) string {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// SignOut clears the session and returns to sign-in.
func SignOut(ctx context.Context, store session.Store, nav router.Navigator, logger *logrus.Logger) error {
	if err := store.Clear(); err != nil {
		logger.WithError(err).Warn("Views.SignOut.ClearError")
	}
	return nav.Go(ctx, router.PathSignIn)
}

// WriterMessenger prints messages the way a blocking alert would read.
type WriterMessenger struct {
	Out io.Writer
}

func (m WriterMessenger) Success(msg string) {
	fmt.Fprintln(m.Out, "Success: "+msg)
}

func (m WriterMessenger) Error(msg string) {
	fmt.Fprintln(m.Out, "Error: "+msg)
}
