package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/pkg/errors"
)

var transactionHeader = []string{"Date", "Type", "Category", "Description", "Amount", "Payment Method", "Voucher", "Responsible"}

var memberHeader = []string{"ID", "Last Name", "First Name", "National ID", "Category", "Phone", "Email", "Enrollment Date", "Payment Status", "Last Payment", "Active"}

// TransactionsCSV writes the transactions of [from, to] followed by the
// income, expense and balance totals.
func (e *Exporter) TransactionsCSV(w io.Writer, txns []*model.Transaction, from, to time.Time) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Transactions", e.club.Name},
		{"From", model.FormatDate(from), "To", model.FormatDate(to)},
		{},
		transactionHeader,
	}

	var totals model.Balance
	for _, t := range txns {
		switch t.Type {
		case model.TransactionIncome:
			totals.Income += t.Amount
		case model.TransactionExpense:
			totals.Expense += t.Amount
		}
		rows = append(rows, []string{
			model.FormatDate(t.Date),
			string(t.Type),
			t.Category,
			t.Description,
			money(t.Amount),
			t.PaymentMethod,
			t.Voucher,
			t.ResponsibleParty,
		})
	}
	totals.Balance = totals.Income - totals.Expense

	rows = append(rows,
		[]string{},
		[]string{"Total Income", money(totals.Income)},
		[]string{"Total Expense", money(totals.Expense)},
		[]string{"Balance", money(totals.Balance)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "failed to write transactions csv")
	}
	return nil
}

// MembersCSV writes one row per member in the given order.
func (e *Exporter) MembersCSV(w io.Writer, members []*model.Member) error {
	cw := csv.NewWriter(w)

	rows := [][]string{memberHeader}
	for _, m := range members {
		lastPayment := ""
		if m.LastPaymentDate != nil {
			lastPayment = model.FormatDate(*m.LastPaymentDate)
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.LastName,
			m.FirstName,
			m.NationalID,
			m.Category,
			m.Phone,
			m.Email,
			model.FormatDate(m.EnrollmentDate),
			string(m.PaymentStatus),
			lastPayment,
			strconv.FormatBool(m.Active),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "failed to write members csv")
	}
	return nil
}

func (e *Exporter) WriteTransactions(txns []*model.Transaction, from, to time.Time) (string, error) {
	return e.write("transactions", "csv", func(f *os.File) error {
		return e.TransactionsCSV(f, txns, from, to)
	})
}

func (e *Exporter) WriteMembers(members []*model.Member) (string, error) {
	return e.write("members", "csv", func(f *os.File) error {
		return e.MembersCSV(f, members)
	})
}
