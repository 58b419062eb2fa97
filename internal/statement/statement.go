package statement

import (
	"strings"
	"time"

	"github.com/carson-networks/bank-client/internal/service"
)

const (
	// Title is the heading of every statement.
	Title = "Account Statement"
	// EmptyText is the only body line of a statement with no transactions.
	EmptyText = "No transactions found for this account."
	// DateFormat renders the generation date.
	DateFormat = "2006-01-02"
)

var separator = strings.Repeat("-", 93)

// Line is one positioned run of text, coordinates in millimetres from the top left.
type Line struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
}

// Page is the ordered lines of one page.
type Page struct {
	Lines []Line
}

// Document is a laid-out statement ready to render.
type Document struct {
	FileName string
	Pages    []Page
}

// Layout holds the geometry of a statement page.
type Layout struct {
	MarginX       float64
	TitleY        float64
	AccountY      float64
	DateY         float64
	StartY        float64
	ResetY        float64
	PageBreakY    float64
	LineAdvance   float64
	BlockGap      float64
	TitleSize     float64
	BodySize      float64
	SeparatorSize float64
}

// DefaultLayout is an A4 portrait page with a fixed header and 40mm per transaction.
func DefaultLayout() Layout {
	return Layout{
		MarginX:       14,
		TitleY:        20,
		AccountY:      30,
		DateY:         36,
		StartY:        50,
		ResetY:        20,
		PageBreakY:    260,
		LineAdvance:   6,
		BlockGap:      10,
		TitleSize:     18,
		BodySize:      12,
		SeparatorSize: 14,
	}
}

// FileName is the download name of an account's statement.
func FileName(accountNumber string) string {
	return "Account_Statement_" + accountNumber + ".pdf"
}

// Render lays out txs with the default layout.
func Render(accountNumber string, txs []service.Transaction, generated time.Time) *Document {
	return DefaultLayout().Render(accountNumber, txs, generated)
}

// Render lays out the header on the first page, then one block per transaction with a
// running cursor. Once the cursor passes PageBreakY the next block starts a new page at ResetY.
func (l Layout) Render(accountNumber string, txs []service.Transaction, generated time.Time) *Document {
	doc := &Document{FileName: FileName(accountNumber)}
	page := Page{Lines: []Line{
		{Text: Title, X: l.MarginX, Y: l.TitleY, FontSize: l.TitleSize},
		{Text: "Account Number: " + accountNumber, X: l.MarginX, Y: l.AccountY, FontSize: l.BodySize},
		{Text: "Date: " + generated.Format(DateFormat), X: l.MarginX, Y: l.DateY, FontSize: l.BodySize},
	}}

	y := l.StartY
	if len(txs) == 0 {
		page.Lines = append(page.Lines, Line{Text: EmptyText, X: l.MarginX, Y: y, FontSize: l.BodySize})
		doc.Pages = append(doc.Pages, page)
		return doc
	}

	for i, tx := range txs {
		page.Lines = append(page.Lines, Line{Text: separator, X: l.MarginX, Y: y, FontSize: l.SeparatorSize})
		y += l.LineAdvance

		for j, text := range blockLines(tx) {
			page.Lines = append(page.Lines, Line{Text: text, X: l.MarginX, Y: y, FontSize: l.BodySize})
			if j < 4 {
				y += l.LineAdvance
			}
		}
		y += l.BlockGap

		if y > l.PageBreakY && i < len(txs)-1 {
			doc.Pages = append(doc.Pages, page)
			page = Page{}
			y = l.ResetY
		}
	}

	doc.Pages = append(doc.Pages, page)
	return doc
}

func blockLines(tx service.Transaction) [5]string {
	amount := "0.00"
	if tx.Amount != nil && !tx.Amount.IsZero() {
		amount = tx.Amount.String()
	}
	return [5]string{
		"Date: " + orNA(tx.Date),
		"Description: " + orNA(tx.Description),
		"Type: " + orNA(tx.TransactionType),
		"Amount: Rs." + amount,
		"Status: " + orNA(tx.Status),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
