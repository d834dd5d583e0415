package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/internal/services"
	"github.com/pkg/errors"
)

// DuesReceiptPDF renders a one page receipt for a collected dues payment.
func (e *Exporter) DuesReceiptPDF(w io.Writer, r *model.DuesReceipt) error {
	if r == nil || r.Payment == nil || r.Member == nil {
		return errors.New("receipt requires a payment and a member")
	}
	p, m := r.Payment, r.Member

	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle(tr("Receipt "+p.ReceiptNumber), false)
	pdf.AddPage()

	// Club header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(128, 9, tr(e.club.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{e.club.Address, e.club.City, contactLine(e.club.Phone, e.club.Email)} {
		if line != "" {
			pdf.CellFormat(128, 5, tr(line), "", 1, "C", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(78, 9, "DUES RECEIPT", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 9, tr("No. "+p.ReceiptNumber), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(128, 7, "Date: "+p.PaymentDate.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Member
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(128, 8, "Member", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(78, 7, tr("Name: "+m.FullName()), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr("ID: "+services.FormatNationalID(m.NationalID)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(128, 7, tr("Category: "+m.Category), "LRB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Payment
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(128, 8, "Payment", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(64, 7, "Period: "+p.Period(), "LB", 0, "L", false, 0, "")
	method := p.PaymentMethod
	if method == "" {
		method = "-"
	}
	pdf.CellFormat(64, 7, tr("Method: "+method), "RB", 1, "L", false, 0, "")
	if p.Notes != "" {
		pdf.MultiCell(128, 6, tr("Notes: "+p.Notes), "LRB", "L", false)
	}
	pdf.Ln(3)

	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(128, 11, fmt.Sprintf("TOTAL: $ %s", money(p.Amount)), "1", 1, "C", true, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(128, 5, "______________________________", "", 1, "R", false, 0, "")
	pdf.CellFormat(128, 5, "Signature", "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "failed to render receipt")
	}
	return nil
}

// WriteDuesReceipt renders the receipt into the export directory and
// returns the file path.
func (e *Exporter) WriteDuesReceipt(r *model.DuesReceipt) (string, error) {
	prefix := "receipt"
	if r != nil && r.Payment != nil && r.Payment.ReceiptNumber != "" {
		prefix += "_" + r.Payment.ReceiptNumber
	}
	return e.write(prefix, "pdf", func(f *os.File) error {
		return e.DuesReceiptPDF(f, r)
	})
}

func contactLine(phone, email string) string {
	switch {
	case phone != "" && email != "":
		return "Tel: " + phone + " - " + email
	case phone != "":
		return "Tel: " + phone
	}
	return email
}
