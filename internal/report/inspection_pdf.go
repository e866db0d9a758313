package report

import (
	"fmt"
	"io"
	"route-roster-service/internal/domain"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points (US Letter).
const (
	margin     = 40.0
	lineHeight = 12.0
	cellPad    = 4.0
	fontSize   = 9.0
)

var (
	columnTitles = [4]string{"Elemento", "Estado", "Observaciones", "Última modificación"}
	columnWidths = [4]float64{160, 50, 212, 110}

	rowShade = domain.RGB{245, 245, 245}
	// Categories whose header fill is light enough to need dark text.
	darkHeaderText = map[string]bool{"Tablero": true}
)

// InspectionReport is the printable inspection log.
type InspectionReport struct {
	Unit  domain.UnitInfo
	Items []domain.InspectionItem
	// Location formats the modification timestamps; UTC when nil.
	Location *time.Location
}

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	loc    *time.Location
	bottom float64
	// lowest is the largest y any row has reached.
	lowest float64
}

func newPDFWriter(loc *time.Location) *pdfWriter {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle("Bitácora de Revisión", true)

	if loc == nil {
		loc = time.UTC
	}
	_, pageH := pdf.GetPageSize()
	return &pdfWriter{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		loc:    loc,
		bottom: pageH - margin,
	}
}

// Render writes the report as a Letter-size PDF and returns the page count.
// Items are grouped by catalog category; categories without items are skipped.
func (r InspectionReport) Render(w io.Writer) (int, error) {
	pw := newPDFWriter(r.Location)
	pdf := pw.pdf

	pdf.AddPage()
	pw.header(r.Unit)

	byCategory := make(map[string][]domain.InspectionItem)
	for _, it := range r.Items {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}
	for _, cat := range domain.InspectionCatalog {
		items := byCategory[cat.Name]
		if len(items) == 0 {
			continue
		}
		sortByCatalog(cat, items)
		pw.category(cat, items)
	}

	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("render inspection report: %w", err)
	}
	pages := pdf.PageCount()
	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("render inspection report: write: %w", err)
	}
	return pages, nil
}

// sortByCatalog orders items as their elements appear in the category.
// Elements missing from the catalog go last, by name.
func sortByCatalog(cat domain.InspectionCategory, items []domain.InspectionItem) {
	pos := make(map[string]int, len(cat.Elements))
	for i, el := range cat.Elements {
		pos[el] = i
	}
	rank := func(el string) int {
		if p, ok := pos[el]; ok {
			return p
		}
		return len(cat.Elements)
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rank(items[i].Element), rank(items[j].Element)
		if ri != rj {
			return ri < rj
		}
		return items[i].Element < items[j].Element
	})
}

func (pw *pdfWriter) header(u domain.UnitInfo) {
	pdf := pw.pdf
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, pw.tr("Bitácora de Revisión - Transporte Público"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		"Unidad: " + u.Unit,
		"Modelo: " + u.Model,
		"Operador: " + u.Operator,
	} {
		pdf.CellFormat(0, 15, pw.tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)
}

func (pw *pdfWriter) category(cat domain.InspectionCategory, items []domain.InspectionItem) {
	pdf := pw.pdf
	const titleH = 22.0
	headH := lineHeight + 2*cellPad

	// Keep the title, the header and the start of the first row together.
	first := min(pw.rowHeight(pw.rowCells(items[0])), 3*lineHeight+2*cellPad)
	if pdf.GetY()+titleH+headH+first > pw.bottom {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(int(cat.Color[0]), int(cat.Color[1]), int(cat.Color[2]))
	pdf.CellFormat(0, titleH, pw.tr(cat.Name), "", 1, "L", false, 0, "")
	pw.tableHeader(cat)

	// Room below the table header on a fresh page.
	pageRoom := pw.bottom - margin - headH

	for i, it := range items {
		cells := pw.rowCells(it)
		shaded := i%2 == 1
		for {
			h := pw.rowHeight(cells)
			if pdf.GetY()+h <= pw.bottom {
				pw.row(cells, h, shaded)
				break
			}
			// A row taller than a page is split; the rest continues on the next one.
			fit := int((pw.bottom - pdf.GetY() - 2*cellPad) / lineHeight)
			if h > pageRoom && fit >= 1 {
				var head [4][][]byte
				head, cells = splitCells(cells, fit)
				pw.row(head, pw.rowHeight(head), shaded)
			}
			pdf.AddPage()
			pw.tableHeader(cat)
		}
	}
	pdf.Ln(18)
}

// splitCells cuts every column after n lines.
func splitCells(cells [4][][]byte, n int) (head, rest [4][][]byte) {
	for i, c := range cells {
		k := min(n, len(c))
		head[i], rest[i] = c[:k], c[k:]
	}
	return head, rest
}

func (pw *pdfWriter) tableHeader(cat domain.InspectionCategory) {
	pdf := pw.pdf
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(int(cat.Color[0]), int(cat.Color[1]), int(cat.Color[2]))
	if darkHeaderText[cat.Name] {
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.SetTextColor(255, 255, 255)
	}
	pdf.SetDrawColor(200, 200, 200)

	h := lineHeight + 2*cellPad
	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], h, pw.tr(title), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(h)
}

// rowCells wraps every cell of an item to its column width.
func (pw *pdfWriter) rowCells(it domain.InspectionItem) [4][][]byte {
	pw.pdf.SetFont("Helvetica", "", fontSize)

	status := "x"
	if it.OK {
		status = "Bien"
	}
	texts := [4]string{
		it.Element,
		status,
		it.Notes,
		it.ModifiedAt.In(pw.loc).Format("02/01/2006 15:04"),
	}

	var cells [4][][]byte
	for i, txt := range texts {
		cells[i] = pw.pdf.SplitLines([]byte(pw.tr(txt)), columnWidths[i]-2*cellPad)
	}
	return cells
}

func (pw *pdfWriter) rowHeight(cells [4][][]byte) float64 {
	lines := 1
	for _, c := range cells {
		if len(c) > lines {
			lines = len(c)
		}
	}
	return float64(lines)*lineHeight + 2*cellPad
}

func (pw *pdfWriter) row(cells [4][][]byte, h float64, shaded bool) {
	pdf := pw.pdf
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(200, 200, 200)

	style := "D"
	if shaded {
		pdf.SetFillColor(int(rowShade[0]), int(rowShade[1]), int(rowShade[2]))
		style = "FD"
	}

	x, y := margin, pdf.GetY()
	for i, lines := range cells {
		pdf.Rect(x, y, columnWidths[i], h, style)
		for j, line := range lines {
			pdf.SetXY(x+cellPad, y+cellPad+float64(j)*lineHeight)
			pdf.CellFormat(columnWidths[i]-2*cellPad, lineHeight, string(line), "", 0, "L", false, 0, "")
		}
		x += columnWidths[i]
	}
	pdf.SetXY(margin, y+h)
	pw.lowest = max(pw.lowest, y+h)
}
