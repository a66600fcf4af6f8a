package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// ColumnLayout describes where a bank export keeps each field. Column
// indexes are zero based; a negative Type means the export has none.
type ColumnLayout struct {
	Name        string
	DateFormat  string
	Fields      int // exact field count per record; 0 accepts any
	Date        int
	Description int
	Amount      int
	Type        int
}

// ChaseLayout matches Chase checking exports:
// Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
var ChaseLayout = ColumnLayout{
	Name:        "chase",
	DateFormat:  "01/02/2006",
	Fields:      7,
	Date:        1,
	Description: 2,
	Amount:      3,
	Type:        4,
}

// GenericLayout matches a minimal Date,Description,Amount export with ISO
// dates and signed amounts.
var GenericLayout = ColumnLayout{
	Name:        "generic",
	DateFormat:  "2006-01-02",
	Fields:      3,
	Date:        0,
	Description: 1,
	Amount:      2,
	Type:        -1,
}

// CSVParser parses any export described by a ColumnLayout. The first
// record is a header and is skipped.
type CSVParser struct {
	layout ColumnLayout
}

// NewCSVParser returns a parser for layout.
func NewCSVParser(layout ColumnLayout) *CSVParser {
	return &CSVParser{layout: layout}
}

// Format returns the layout name.
func (p *CSVParser) Format() string { return p.layout.Name }

// Parse reads a CSV export and returns BankTransactions.
func (p *CSVParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = p.layout.Fields
	if p.layout.Fields == 0 {
		cr.FieldsPerRecord = -1
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", p.layout.Name, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := p.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (p *CSVParser) parseRow(rec []string) (model.BankTransaction, error) {
	l := p.layout
	if n := max(l.Date, l.Description, l.Amount, l.Type); n >= len(rec) {
		return model.BankTransaction{}, fmt.Errorf("want at least %d fields, got %d", n+1, len(rec))
	}

	date, err := time.Parse(l.DateFormat, strings.TrimSpace(rec[l.Date]))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[l.Date], err)
	}

	raw := strings.ReplaceAll(strings.TrimSpace(rec[l.Amount]), ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[l.Amount], err)
	}

	desc := strings.TrimSpace(rec[l.Description])
	txn := model.BankTransaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Reference:   makeRef(l.Name, date, desc),
	}
	if l.Type >= 0 {
		txn.Type = rec[l.Type]
	}
	return txn, nil
}

// makeRef creates a reference like chase_20250103_GITHUBPROS.
func makeRef(format string, date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("%s_%s_%s", format, date.Format("20060102"), prefix)
}
