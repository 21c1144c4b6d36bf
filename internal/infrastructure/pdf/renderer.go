// Package pdf renders invoices into paginated, print-ready PDF documents.
//
// The layout is a fixed Letter page: business header, recipient block,
// optional job block, SERVICES and MATERIALS item tables, a reconciled
// totals block and a footer. Label/value money blocks size their columns
// from measured text so labels and values never overlap.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points. Letter with 0.75in margins on every side.
const (
	pageWidth     = 612.0
	pageHeight    = 792.0
	pageMargin    = 54.0
	contentWidth  = pageWidth - 2*pageMargin
	contentRight  = pageWidth - pageMargin
	contentBottom = pageHeight - pageMargin
)

// Header split: business identity left, invoice metadata right.
const (
	headerLeftW  = 288.0
	headerRightW = contentWidth - headerLeftW
)

// Line heights per text role.
const (
	titleLineH   = 22.0
	titleGap     = 2.0
	bodyLineH    = 14.0
	moneyLineH   = 12.0
	sectionLineH = 18.0
	totalLineH   = 16.0
)

// Items table: four columns, horizontally centered in the content area.
const (
	colDescW    = 201.6
	colQtyW     = 57.6
	colRateW    = 86.4
	colAmountW  = 122.4
	itemsTableW = colDescW + colQtyW + colRateW + colAmountW
	itemsTableX = pageMargin + (contentWidth-itemsTableW)/2

	cellPadX     = 12.0
	cellPadY     = 10.0
	tableHeaderH = 32.0
	gridLineW    = 0.5
)

// Pair blocks (section subtotals and grand totals).
const (
	pairGutter           = 20.0
	rulePad              = 10.0
	pairPad              = 15.0
	pairBlockCapW        = 360.0
	sectionPairMinLabelW = 180.0
	sectionPairMinValueW = 129.6
	totalsPairMinW       = 144.0
)

// Vertical rhythm between blocks.
const (
	spacerAfterHeader  = 28.8
	spacerSmall        = 14.4
	spacerAfterTable   = 10.8
	spacerAfterPair    = 18.0
	spacerBeforeFooter = 36.0
	sectionSpaceBefore = 12.0
	sectionSpaceAfter  = 6.0
)

const (
	footerThanks  = "Thank you for your business!"
	footerTagline = "Generated by TradeBill"
)

var (
	itemsHeaders = [4]string{"Description", "Quantity", "Rate", "Amount"}
	itemsAligns  = [4]string{"L", "C", "R", "R"}
)

// Renderer produces invoice PDFs from stored or caller-supplied documents.
// It holds no state; every render builds its own writer, so concurrent
// renders share nothing and identical inputs yield byte-identical output.
type Renderer struct{}

var _ interfaces.IInvoiceRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) CreateDocument(inv entities.Invoice, user entities.User, client entities.Client) ([]byte, error) {
	w := newDocWriter(inv.IssueDate)
	sum := summarize(inv)

	w.addHeader(inv, user)
	w.addBillTo(client)
	w.addJobBlock(inv)
	w.addItemsSection("SERVICES", sum.Services, sum.ServicesTotal)
	w.addItemsSection("MATERIALS", sum.Materials, sum.MaterialsTotal)
	w.addTotals(sum)
	w.addFooter()

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) CreateDocumentBase64(inv entities.Invoice, user entities.User, client entities.Client) (string, error) {
	raw, err := r.CreateDocument(inv, user, client)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// docWriter drives one document: a gofpdf page, the palette, and a vertical
// cursor measured from the top of the page. Page breaks are explicit via
// ensureSpace so blocks control their own split behavior.
type docWriter struct {
	pdf *gofpdf.Fpdf
	st  styleSet
	y   float64
}

func newDocWriter(issueDate string) *docWriter {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.SetCellMargin(0)
	// Anchor the creation timestamp to the invoice and keep catalog
	// ordering stable so identical inputs produce identical bytes.
	doc.SetCreationDate(parseDocumentTime(issueDate))
	doc.SetCatalogSort(true)
	doc.AddPage()
	return &docWriter{pdf: doc, st: defaultStyles(), y: pageMargin}
}

func (w *docWriter) setFont(f fontSpec) {
	w.pdf.SetFont(fontFamily, f.style, f.size)
}

func (w *docWriter) measure(text string, f fontSpec) float64 {
	w.setFont(f)
	return w.pdf.GetStringWidth(text)
}

func (w *docWriter) wrap(text string, f fontSpec, width float64) []string {
	w.setFont(f)
	lines := w.pdf.SplitText(text, width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (w *docWriter) drawText(x, y, width, lineH float64, text string, f fontSpec, c rgb, align string) {
	w.setFont(f)
	w.pdf.SetTextColor(c.r, c.g, c.b)
	w.pdf.SetXY(x, y)
	w.pdf.CellFormat(width, lineH, text, "", 0, align, false, 0, "")
}

func (w *docWriter) spacer(h float64) {
	w.y += h
}

func (w *docWriter) ensureSpace(h float64) {
	if w.y+h > contentBottom {
		w.pdf.AddPage()
		w.y = pageMargin
	}
}

// flowLine draws one already-fitted line at the left margin and advances.
func (w *docWriter) flowLine(text string, f fontSpec, c rgb) {
	w.ensureSpace(bodyLineH)
	w.drawText(pageMargin, w.y, contentWidth, bodyLineH, text, f, c, "L")
	w.y += bodyLineH
}

// flowText wraps text at the content width and flows it line by line.
func (w *docWriter) flowText(text string, f fontSpec, c rgb) {
	for _, line := range w.wrap(text, f, contentWidth) {
		w.flowLine(line, f, c)
	}
}

type headerLine struct {
	text string
	font fontSpec
}

func (w *docWriter) addHeader(inv entities.Invoice, user entities.User) {
	name := user.BusinessName
	if name == "" {
		name = "Invoice"
	}
	titleLines := w.wrap(name, fontTitle, headerLeftW)

	var contactLines []string
	for _, field := range []string{user.BusinessAddress, user.BusinessPhone, user.BusinessEmail} {
		if field == "" {
			continue
		}
		contactLines = append(contactLines, w.wrap(field, fontBody, headerLeftW)...)
	}

	number := inv.InvoiceNumber
	if number == "" {
		number = "N/A"
	}
	metaLines := []headerLine{{text: "INVOICE", font: fontBodyBold}}
	for _, text := range []string{
		"Invoice #: " + number,
		"Issue Date: " + formatDate(inv.IssueDate),
		"Due Date: " + formatDate(inv.DueDate),
	} {
		for _, line := range w.wrap(text, fontBody, headerRightW) {
			metaLines = append(metaLines, headerLine{text: line, font: fontBody})
		}
	}

	status := strings.ToUpper(string(inv.Status))
	if status == "" {
		status = "DRAFT"
	}

	leftH := float64(len(titleLines))*titleLineH + titleGap + float64(len(contactLines))*bodyLineH
	rightH := float64(len(metaLines)+1) * bodyLineH
	w.ensureSpace(math.Max(leftH, rightH))

	y := w.y
	for _, line := range titleLines {
		w.drawText(pageMargin, y, headerLeftW, titleLineH, line, fontTitle, w.st.text, "L")
		y += titleLineH
	}
	y += titleGap
	for _, line := range contactLines {
		w.drawText(pageMargin, y, headerLeftW, bodyLineH, line, fontBody, w.st.text, "L")
		y += bodyLineH
	}

	y = w.y
	rightX := pageMargin + headerLeftW
	for _, line := range metaLines {
		w.drawText(rightX, y, headerRightW, bodyLineH, line.text, line.font, w.st.text, "R")
		y += bodyLineH
	}

	// "Status: " stays in body ink; only the status value carries the badge
	// color. Drawn as two runs so the pair still right-aligns as a whole.
	prefix := "Status: "
	prefixW := w.measure(prefix, fontBody)
	statusW := w.measure(status, fontBodyBold)
	x := contentRight - prefixW - statusW
	w.drawText(x, y, prefixW, bodyLineH, prefix, fontBody, w.st.text, "L")
	w.drawText(x+prefixW, y, statusW, bodyLineH, status, fontBodyBold, w.st.statusColor(status), "L")

	w.y += math.Max(leftH, rightH)
	w.spacer(spacerAfterHeader)
}

func (w *docWriter) addBillTo(client entities.Client) {
	w.flowLine("BILL TO:", fontLabel, w.st.muted)
	if client.Name != "" {
		w.flowText(client.Name, fontBodyBold, w.st.text)
	}
	if client.Email != "" {
		w.flowText(client.Email, fontBody, w.st.text)
	}
	if client.Address != "" {
		w.flowText(client.Address, fontBody, w.st.text)
	}
	w.spacer(spacerSmall)
}

func (w *docWriter) addJobBlock(inv entities.Invoice) {
	if inv.InvoiceTitle == "" && inv.InvoiceDescription == "" {
		return
	}
	w.flowLine("Job/Project:", fontLabel, w.st.muted)
	if inv.InvoiceTitle != "" {
		w.flowText(inv.InvoiceTitle, fontBodyBold, w.st.text)
	}
	if inv.InvoiceDescription != "" {
		w.flowText(inv.InvoiceDescription, fontBody, w.st.text)
	}
	w.spacer(spacerSmall)
}

func (w *docWriter) addItemsSection(title string, items []entities.LineItem, total float64) {
	if len(items) == 0 {
		return
	}

	w.spacer(sectionSpaceBefore)
	w.ensureSpace(sectionLineH)
	w.drawText(pageMargin, w.y, contentWidth, sectionLineH, title, fontSection, w.st.primary, "L")
	w.y += sectionLineH
	w.spacer(sectionSpaceAfter)

	// Keep the header band attached to at least one minimal body row.
	w.ensureSpace(tableHeaderH + 2*cellPadY + bodyLineH)
	w.drawItemsHeader()
	for _, it := range items {
		descLines := w.wrap(it.Description, fontBody, colDescW-2*cellPadX)
		rowH := 2*cellPadY + math.Max(float64(len(descLines))*bodyLineH, moneyLineH)
		if w.y+rowH > contentBottom {
			w.pdf.AddPage()
			w.y = pageMargin
			w.drawItemsHeader()
		}
		w.drawItemsRow(it, descLines, rowH)
	}
	w.spacer(spacerAfterTable)

	label := titleCase(title) + " Subtotal:"
	value := formatCurrency(total)
	labelW, valueW := computePairWidths(pairSpec{
		label:     label,
		values:    []string{value},
		labelFont: fontPair,
		valueFont: fontPair,
		minLabelW: sectionPairMinLabelW,
		minValueW: sectionPairMinValueW,
		pad:       pairPad,
		maxTotalW: math.Min(pairBlockCapW, contentWidth),
	}, w.measure)
	w.drawPairBlock([]pairRow{{
		label:     label,
		value:     value,
		labelFont: fontPair,
		valueFont: fontPair,
		color:     w.st.text,
		lineH:     bodyLineH,
	}}, labelW, valueW)
	w.spacer(spacerAfterPair)
}

func (w *docWriter) drawItemsHeader() {
	w.pdf.SetLineWidth(gridLineW)
	w.pdf.SetDrawColor(w.st.grid.r, w.st.grid.g, w.st.grid.b)
	w.pdf.SetFillColor(w.st.primary.r, w.st.primary.g, w.st.primary.b)
	x := itemsTableX
	for i, cw := range [4]float64{colDescW, colQtyW, colRateW, colAmountW} {
		w.pdf.Rect(x, w.y, cw, tableHeaderH, "FD")
		w.drawText(x+cellPadX, w.y+cellPadY, cw-2*cellPadX, moneyLineH, itemsHeaders[i], fontTableHeader, w.st.headerText, itemsAligns[i])
		x += cw
	}
	w.y += tableHeaderH
}

func (w *docWriter) drawItemsRow(it entities.LineItem, descLines []string, rowH float64) {
	w.pdf.SetLineWidth(gridLineW)
	w.pdf.SetDrawColor(w.st.grid.r, w.st.grid.g, w.st.grid.b)
	w.pdf.SetFillColor(w.st.fill.r, w.st.fill.g, w.st.fill.b)
	x := itemsTableX
	for _, cw := range [4]float64{colDescW, colQtyW, colRateW, colAmountW} {
		w.pdf.Rect(x, w.y, cw, rowH, "FD")
		x += cw
	}

	qty := safeFloat(it.Quantity.Float())
	rate := safeFloat(it.Rate.Float())

	for i, line := range descLines {
		w.drawText(itemsTableX+cellPadX, w.y+cellPadY+float64(i)*bodyLineH, colDescW-2*cellPadX, bodyLineH, line, fontBody, w.st.text, "L")
	}
	x = itemsTableX + colDescW
	w.drawText(x+cellPadX, w.y+cellPadY, colQtyW-2*cellPadX, moneyLineH, formatQuantity(qty), fontQty, w.st.text, "C")
	x += colQtyW
	w.drawText(x+cellPadX, w.y+cellPadY, colRateW-2*cellPadX, moneyLineH, formatCurrency(rate), fontMoney, w.st.text, "R")
	x += colRateW
	w.drawText(x+cellPadX, w.y+cellPadY, colAmountW-2*cellPadX, moneyLineH, formatCurrency(qty*rate), fontMoney, w.st.text, "R")
	w.y += rowH
}

func (w *docWriter) addTotals(sum billSummary) {
	w.spacer(spacerAfterTable)

	rows := []pairRow{{
		label:     "Subtotal:",
		value:     formatCurrency(sum.Subtotal),
		labelFont: fontPair,
		valueFont: fontPair,
		color:     w.st.text,
		lineH:     bodyLineH,
		ruleAbove: true,
	}}
	if sum.Tax > 0 {
		rows = append(rows, pairRow{
			label:     "Tax:",
			value:     formatCurrency(sum.Tax),
			labelFont: fontPair,
			valueFont: fontPair,
			color:     w.st.text,
			lineH:     bodyLineH,
		})
	}
	rows = append(rows, pairRow{
		label:     "TOTAL:",
		value:     formatCurrency(sum.Total),
		labelFont: fontTotal,
		valueFont: fontTotal,
		color:     w.st.primary,
		lineH:     totalLineH,
		ruleAbove: true,
	})

	// One width pair for the whole block, measured from the widest label at
	// the TOTAL row's font and every value string, so the rows line up.
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.value)
	}
	labelW, valueW := computePairWidths(pairSpec{
		label:     "TOTAL:",
		values:    values,
		labelFont: fontTotal,
		valueFont: fontTotal,
		minLabelW: totalsPairMinW,
		minValueW: totalsPairMinW,
		pad:       pairPad,
		maxTotalW: math.Min(pairBlockCapW, contentWidth),
	}, w.measure)
	w.drawPairBlock(rows, labelW, valueW)
}

// drawPairBlock renders rows as one atomic unit flush against the right
// margin; the whole block moves to the next page rather than splitting.
func (w *docWriter) drawPairBlock(rows []pairRow, labelW, valueW float64) {
	blockH := 0.0
	for _, row := range rows {
		if row.ruleAbove {
			blockH += rulePad
		}
		blockH += row.lineH
	}
	w.ensureSpace(blockH)

	blockW := labelW + valueW
	x := contentRight - blockW
	for _, row := range rows {
		if row.ruleAbove {
			w.pdf.SetLineWidth(1)
			w.pdf.SetDrawColor(w.st.primary.r, w.st.primary.g, w.st.primary.b)
			w.pdf.Line(x, w.y, x+blockW, w.y)
			w.y += rulePad
		}
		w.drawText(x, w.y, labelW-pairGutter, row.lineH, row.label, row.labelFont, row.color, "R")
		w.drawText(x+labelW+pairGutter, w.y, valueW-pairGutter, row.lineH, row.value, row.valueFont, row.color, "R")
		w.y += row.lineH
	}
}

func (w *docWriter) addFooter() {
	w.spacer(spacerBeforeFooter)
	w.ensureSpace(2 * bodyLineH)
	w.drawText(pageMargin, w.y, contentWidth, bodyLineH, footerThanks, fontFooter, w.st.muted, "C")
	w.y += bodyLineH
	w.drawText(pageMargin, w.y, contentWidth, bodyLineH, footerTagline, fontFooterSmall, w.st.muted, "C")
	w.y += bodyLineH
}
