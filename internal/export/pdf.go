package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"regret-journal/internal/model"
)

// US Letter in points.
const (
	pageWidth   = 8.5 * 72
	pageHeight  = 11 * 72
	pageMargin  = 50.0
	blockHeight = 200.0
	lineHeight  = 14.0
)

// PDF writes regrets as a paginated document: a title followed by one fixed
// height block per regret, starting a new page when the next block would not fit.
func PDF(w io.Writer, regrets []model.FinancialRegret) error {
	if len(regrets) == 0 {
		return ErrEmpty
	}
	doc := renderPDF(regrets)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func renderPDF(regrets []model.FinancialRegret) *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetCreator(documentCreator, true)
	doc.SetAuthor("User", true)
	doc.SetTitle(documentTitle, true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Times", "", 28)
	doc.SetTextColor(0xC9, 0x4B, 0x6C)
	doc.SetXY(pageMargin, pageMargin)
	doc.CellFormat(pageWidth-2*pageMargin, 32, tr(documentTitle), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	y := pageMargin + 50
	for i := range regrets {
		if y > pageHeight-blockHeight {
			doc.AddPage()
			y = pageMargin
		}
		r := &regrets[i]
		lesson := r.Lesson()
		if lesson == "" {
			lesson = "No lesson recorded"
		}
		text := fmt.Sprintf("%s\n%s\n\n%s\n\n%s", r.Title, r.Date.Format("January 2, 2006"), r.DescriptionText, lesson)

		// Long entries are clipped to their block.
		doc.ClipRect(pageMargin, y, pageWidth-2*pageMargin, blockHeight, false)
		doc.SetXY(pageMargin, y)
		doc.MultiCell(pageWidth-2*pageMargin, lineHeight, tr(text), "", "L", false)
		doc.ClipEnd()

		y += blockHeight
	}
	return doc
}
