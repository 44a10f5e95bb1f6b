package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"lr-backend/internal/models"
)

// A4 portrait in millimetres.
const (
	pageWidth   = 210.0
	pageHeight  = 297.0
	cardX       = 14.0
	cardWidth   = pageWidth - 2*cardX
	cardHeight  = 36.0
	cardSpacing = 6.0
	firstCardY  = 52.0
	pageBreakY  = 262.0
	footerY     = 282.0
	labelOffset = 38.0
)

// ReportService renders the payment-status PDF. The letterhead comes from
// configuration; the data is supplied by the caller.
type ReportService struct {
	CompanyName string
	Address     string
	Contact     string
}

func NewReportService(companyName, address, contact string) *ReportService {
	return &ReportService{
		CompanyName: companyName,
		Address:     address,
		Contact:     contact,
	}
}

// GeneratePaymentStatusPDF renders one card per status entry, flowing to a
// new page when vertical space runs out. Every page repeats the
// letterhead header and a numbered footer.
func (s *ReportService) GeneratePaymentStatusPDF(statuses []models.ReportStatusEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	s.addPage(pdf)
	y := firstCardY

	for idx, entry := range statuses {
		if y+cardHeight > pageBreakY {
			s.drawFooter(pdf)
			s.addPage(pdf)
			y = firstCardY
		}

		s.drawCard(pdf, y, idx+1, entry)
		y += cardHeight + cardSpacing
	}

	s.drawFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) addPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()

	// Dark page background
	pdf.SetFillColor(26, 26, 26)
	pdf.Rect(0, 0, pageWidth, pageHeight, "F")

	// Letterhead
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(0, 12)
	pdf.CellFormat(pageWidth, 8, s.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(pageWidth, 6, s.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(pageWidth, 6, s.Contact, "", 1, "C", false, 0, "")

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.4)
	pdf.Line(14, 36, pageWidth-14, 36)

	pdf.SetTextColor(255, 255, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(0, 39)
	pdf.CellFormat(pageWidth, 8, "Payment Status Report", "", 1, "C", false, 0, "")
}

func (s *ReportService) drawCard(pdf *gofpdf.Fpdf, y float64, idx int, entry models.ReportStatusEntry) {
	// Drop shadow behind the card
	pdf.SetFillColor(51, 51, 51)
	pdf.RoundedRect(cardX+1.5, y+1.5, cardWidth, cardHeight, 3, "1234", "F")

	// Yellow card with orange border
	pdf.SetFillColor(255, 255, 0)
	pdf.SetDrawColor(255, 165, 0)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(cardX, y, cardWidth, cardHeight, 3, "1234", "FD")

	pad := cardX + 6
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(pad, y+4)
	pdf.CellFormat(cardWidth-12, 6, fmt.Sprintf("%d. Bill No: %s", idx, entry.BillNo), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	row := y + 11
	s.drawField(pdf, pad, row, "LR Number", entry.LRNo)
	row += 5.5
	s.drawField(pdf, pad, row, "Transport Name", entry.TransportName)
	row += 5.5

	pdf.SetXY(pad, row)
	pdf.CellFormat(labelOffset, 5, "Payment Status", "", 0, "L", false, 0, "")
	if strings.EqualFold(entry.PaymentStatus, models.PaymentStatusComplete) {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(cardWidth-labelOffset-12, 5, ": "+entry.PaymentStatus, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	row += 5.5

	s.drawField(pdf, pad, row, "Net Payable", fmt.Sprintf("Rs. %.2f", entry.NetPayable))
	row += 5.5
	s.drawField(pdf, pad, row, "Created At", formatReportDate(entry.CreatedAt))
}

func (s *ReportService) drawField(pdf *gofpdf.Fpdf, x, y float64, label, value string) {
	pdf.SetXY(x, y)
	pdf.CellFormat(labelOffset, 5, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(cardWidth-labelOffset-12, 5, ": "+value, "", 1, "L", false, 0, "")
}

func (s *ReportService) drawFooter(pdf *gofpdf.Fpdf) {
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(0, footerY)
	pdf.CellFormat(pageWidth, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 1, "C", false, 0, "")
	pdf.CellFormat(pageWidth, 5, fmt.Sprintf("(c) %d %s", time.Now().Year(), s.CompanyName), "", 1, "C", false, 0, "")
}

// formatReportDate turns an ISO-date-prefixed timestamp into DD-MM-YYYY.
// Unparseable input is printed as-is.
func formatReportDate(createdAt string) string {
	datePart := createdAt
	if i := strings.IndexByte(createdAt, 'T'); i > 0 {
		datePart = createdAt[:i]
	}
	parsed, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return createdAt
	}
	return parsed.Format("02-01-2006")
}
