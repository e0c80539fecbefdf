package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/middleware"
)

// exportPageLimit caps how many invoices an Excel export pulls per page
// while walking the listing.
const exportPageLimit = 100

type exportService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	proformaRepo portsrepo.ProformaRepositoryFacade
	clientRepo   portsrepo.ClientRepository
}

// NewExportService builds the PDF/Excel rendering service.
func NewExportService(invoiceRepo portsrepo.InvoiceRepositoryFacade, proformaRepo portsrepo.ProformaRepositoryFacade, clientRepo portsrepo.ClientRepository) *exportService {
	return &exportService{invoiceRepo: invoiceRepo, proformaRepo: proformaRepo, clientRepo: clientRepo}
}

func (s *exportService) RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceWithItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	out, err := renderDocumentPDF(documentPrintout{
		Title:      "Invoice",
		Number:     invoice.Number,
		PartyName:  client.DisplayName(),
		PartyLines: clientAddressLines(client),
		DateLabel:  "Invoice date",
		Date:       invoice.InvoiceDate,
		DueLabel:   "Due date",
		Due:        &invoice.DueDate,
		Status:     string(invoice.Status),
		Items:      invoice.Items,
		Totals:     invoice.DocumentTotals,
		PaidAmount: &invoice.PaidAmount,
		Notes:      invoice.Notes,
	})
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return out, nil
}

func (s *exportService) RenderProformaPDF(ctx context.Context, proformaID string) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proforma, err := s.proformaRepo.FindProformaWithItems(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, proforma.ClientID)
	if err != nil {
		return nil, err
	}

	out, err := renderDocumentPDF(documentPrintout{
		Title:      "Proforma Invoice",
		Number:     proforma.Number,
		PartyName:  client.DisplayName(),
		PartyLines: clientAddressLines(client),
		DateLabel:  "Issue date",
		Date:       proforma.IssueDate,
		DueLabel:   "Valid until",
		Due:        &proforma.ExpiryDate,
		Status:     string(proforma.Status),
		Items:      proforma.Items,
		Totals:     proforma.DocumentTotals,
		Notes:      proforma.Notes,
	})
	if err != nil {
		logger.Error("Failed to render proforma PDF", slog.String("error", err.Error()), slog.String("proforma_id", proformaID))
		return nil, fmt.Errorf("failed to render proforma PDF: %w", err)
	}
	return out, nil
}

func (s *exportService) ExportInvoicesExcel(ctx context.Context, today time.Time) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Number", "Client", "Invoice date", "Due date", "Status", "Subtotal", "Tax", "Total", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	page := 1
	for {
		invoices, total, err := s.invoiceRepo.ListInvoices(ctx, portsrepo.ListInvoicesFilter{
			Today: today,
			Page:  page,
			Limit: exportPageLimit,
		})
		if err != nil {
			logger.Error("Failed to export invoices", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to export invoices: %w", err)
		}
		for i := range invoices {
			inv := &invoices[i]
			clientName := inv.ClientID
			if client, err := s.clientRepo.FindClientByID(ctx, inv.ClientID); err == nil {
				clientName = client.DisplayName()
			}
			values := []interface{}{
				inv.Number,
				clientName,
				inv.InvoiceDate.Format("2006-01-02"),
				inv.DueDate.Format("2006-01-02"),
				string(inv.Status),
				inv.Subtotal.InexactFloat64(),
				inv.TaxAmount.InexactFloat64(),
				inv.Total.InexactFloat64(),
				inv.PaidAmount.InexactFloat64(),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
		if int64(page*exportPageLimit) >= total || len(invoices) == 0 {
			break
		}
		page++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// documentPrintout carries the layout-independent content of a printable
// financial document.
type documentPrintout struct {
	Title      string
	Number     string
	PartyName  string
	PartyLines []string
	DateLabel  string
	Date       time.Time
	DueLabel   string
	Due        *time.Time
	Status     string
	Items      []domain.LineItem
	Totals     domain.DocumentTotals
	PaidAmount *decimal.Decimal
	Notes      string
}

func renderDocumentPDF(doc documentPrintout) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s %s", doc.Title, doc.Number), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Status: %s", doc.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Party box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Billed to", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(190, 7, doc.PartyName, "LRB", 1, "L", false, 0, "")
	for _, line := range doc.PartyLines {
		if line == "" {
			continue
		}
		pdf.CellFormat(190, 6, line, "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Dates
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("%s: %s", doc.DateLabel, doc.Date.Format("2006-01-02")), "", 0, "L", false, 0, "")
	if doc.Due != nil {
		pdf.CellFormat(95, 7, fmt.Sprintf("%s: %s", doc.DueLabel, doc.Due.Format("2006-01-02")), "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(7)
	}
	pdf.Ln(2)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(22, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Unit price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Tax %", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range doc.Items {
		desc := item.Description
		if len(desc) > 44 {
			desc = desc[:41] + "..."
		}
		pdf.CellFormat(80, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, item.Quantity.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 6, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, item.TaxRate.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, item.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, doc.Totals.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 7, "Tax", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, doc.Totals.TaxAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, doc.Totals.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	if doc.PaidAmount != nil {
		pdf.CellFormat(150, 7, "Paid", "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, doc.PaidAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	if doc.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(190, 5, doc.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clientAddressLines(c *domain.Client) []string {
	lines := []string{c.Address}
	cityLine := c.PostalCode
	if c.City != "" {
		if cityLine != "" {
			cityLine += " "
		}
		cityLine += c.City
	}
	lines = append(lines, cityLine, c.Country)
	if c.TaxID != "" {
		lines = append(lines, "Tax ID: "+c.TaxID)
	}
	return lines
}
