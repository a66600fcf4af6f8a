package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatEntryID returns an entry ID like "FY2025-0007".
func FormatEntryID(financialYear string, seq int) string {
	return fmt.Sprintf("%s-%04d", financialYear, seq)
}

// ParseEntryID splits "FY2024-25-0007" into its financial year label and
// sequence. The year label may itself contain dashes.
func ParseEntryID(id string) (financialYear string, seq int, err error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	seq, err = strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}
	if seq <= 0 {
		return "", 0, fmt.Errorf("invalid sequence in entry ID %q: must be positive", id)
	}

	return id[:i], seq, nil
}

// FinancialYear labels the financial year containing date. yearStart is the
// first day of the year as "MM-DD". Calendar years read "FY2025"; split
// years read "FY2024-25".
func FinancialYear(date time.Time, yearStart string) (string, error) {
	start, err := time.Parse("01-02", yearStart)
	if err != nil {
		return "", fmt.Errorf("invalid year start %q: %w", yearStart, err)
	}

	if start.Month() == time.January && start.Day() == 1 {
		return fmt.Sprintf("FY%04d", date.Year()), nil
	}

	first := date.Year()
	boundary := time.Date(date.Year(), start.Month(), start.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(boundary) {
		first--
	}
	return fmt.Sprintf("FY%04d-%02d", first, (first+1)%100), nil
}
