package views

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/carson-networks/bank-client/internal/service"
	"github.com/carson-networks/bank-client/internal/statement"
)

// Downloader stores a generated file under name and reports where it went.
type Downloader interface {
	Download(name string, write func(w io.Writer) error) (string, error)
}

// DirDownloader saves downloads into a directory.
type DirDownloader struct {
	Dir string
}

func (d DirDownloader) Download(name string, write func(w io.Writer) error) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("download: create dir: %w", err)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("download: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("download: close %s: %w", path, err)
	}
	return path, nil
}

type statementFetcher interface {
	Statement(ctx context.Context, accountNumber string) ([]service.Transaction, error)
}

// exportStatement fetches the account's transactions and hands the rendered PDF to the downloader.
func exportStatement(ctx context.Context, d Deps, fetcher statementFetcher, accountNumber string) (string, error) {
	logData := d.logData("statementExport")
	logData.AddData("accountNumber", accountNumber)

	stopTimer := logData.AddTiming("statementMs")
	txs, err := fetcher.Statement(ctx, accountNumber)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Warn("Views.ExportStatement.Error")
		d.Messenger.Error(failureText(err, msgDownloadFailed))
		return "", err
	}

	doc := statement.Render(accountNumber, txs, d.now())
	logData.AddData("transactions", len(txs))
	logData.AddData("pages", len(doc.Pages))

	path, err := d.Downloader.Download(doc.FileName, doc.WritePDF)
	if err != nil {
		logData.Log().WithError(err).Warn("Views.ExportStatement.Error")
		d.Messenger.Error(msgDownloadFailed)
		return "", err
	}

	logData.AddData("path", path)
	logData.Log().Info("Views.ExportStatement.Complete")
	return path, nil
}
