package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Header is the CSV header for a journal/<financial year>.csv file.
const Header = "entry_id,date,financial_year,description,debit_account_id,credit_account_id,amount"

const (
	numFields     = 7
	dateFormat    = "2006-01-02"
	colEntryID    = 0
	colDate       = 1
	colYear       = 2
	colDesc       = 3
	colDebitAcct  = 4
	colCreditAcct = 5
	colAmount     = 6
)

// Row is a journal entry as stored on disk: accounts by ID only.
type Row struct {
	EntryID         string
	Date            time.Time
	FinancialYear   string
	Description     string
	DebitAccountID  int
	CreditAccountID int
	Amount          decimal.Decimal
}

// ReadRows reads all rows from a journal CSV reader.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to a journal CSV writer (including header).
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRows appends rows to an existing journal CSV writer (no header).
func AppendRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colEntryID] = row.EntryID
	rec[colDate] = row.Date.Format(dateFormat)
	rec[colYear] = row.FinancialYear
	rec[colDesc] = row.Description
	rec[colDebitAcct] = strconv.Itoa(row.DebitAccountID)
	rec[colCreditAcct] = strconv.Itoa(row.CreditAccountID)
	rec[colAmount] = row.Amount.StringFixed(2)
	return rec
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	debitID, err := strconv.Atoi(record[colDebitAcct])
	if err != nil {
		return Row{}, fmt.Errorf("parsing debit_account_id %q: %w", record[colDebitAcct], err)
	}

	creditID, err := strconv.Atoi(record[colCreditAcct])
	if err != nil {
		return Row{}, fmt.Errorf("parsing credit_account_id %q: %w", record[colCreditAcct], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Row{
		EntryID:         record[colEntryID],
		Date:            date,
		FinancialYear:   record[colYear],
		Description:     record[colDesc],
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          amount,
	}, nil
}
