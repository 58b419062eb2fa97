package statement

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the document as an A4 PDF.
func (d *Document) WritePDF(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range d.Pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			pdf.SetFont("Helvetica", "", line.FontSize)
			pdf.Text(line.X, line.Y, tr(line.Text))
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("statement: render pdf: %w", err)
	}
	return nil
}
