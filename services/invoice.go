package services

import (
	"bytes"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

// RenderInvoicePDF builds the invoice document for a payment: header,
// bill-to block, one row per line item and the paid total. The order must
// carry its line items with menu items loaded.
func RenderInvoicePDF(order *models.Order, payment *models.Payment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "RELAXING KOALA", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Invoice No: "+payment.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+time.Now().Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if payment.InvoiceName != nil {
		pdf.CellFormat(0, 6, *payment.InvoiceName, "", 1, "L", false, 0, "")
	}
	if payment.InvoiceAddress != nil {
		pdf.CellFormat(0, 6, *payment.InvoiceAddress, "", 1, "L", false, 0, "")
	}
	if payment.InvoiceEmail != nil {
		pdf.CellFormat(0, 6, *payment.InvoiceEmail, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	const (
		descWidth   = 95.0
		qtyWidth    = 20.0
		rateWidth   = 35.0
		amountWidth = 35.0
		rowHeight   = 8.0
	)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(descWidth, rowHeight, "Item Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(qtyWidth, rowHeight, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(rateWidth, rowHeight, "@", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(descWidth, rowHeight, item.MenuItem.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyWidth, rowHeight, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(rateWidth, rowHeight, utils.FormatCurrency(item.MenuItem.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountWidth, rowHeight, utils.FormatCurrency(item.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(descWidth+qtyWidth+rateWidth, rowHeight, "TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, utils.FormatCurrency(payment.Amount), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
