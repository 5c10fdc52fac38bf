package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/watchfire-io/logaudit/internal/buildinfo"
	"github.com/watchfire-io/logaudit/internal/models"
)

// WritePDF renders res and writes it to path. Nothing is guaranteed about
// the file when an error is returned.
func WritePDF(path string, res models.AnalysisResult, opts Options) error {
	pdf := buildPDF(Layout(res, opts), res, opts)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func buildPDF(pages []Page, res models.AnalysisResult, opts Options) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: opts.Width, Ht: opts.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("logaudit "+buildinfo.Version, true)
	if res.RunID != "" {
		pdf.SetSubject("run "+res.RunID, true)
	}

	// Core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, page := range pages {
		pdf.AddPage()
		for _, ln := range page.Lines {
			pdf.SetFont(ln.Font.Family, ln.Font.Style, ln.Font.Size)
			pdf.Text(ln.X, opts.Height-ln.Y, tr(ln.Text))
		}
	}
	return pdf
}
