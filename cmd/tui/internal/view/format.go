package view

import (
	"fmt"
	"time"
)

// FormatQAR renders dirhams as a QAR amount.
func FormatQAR(dirhams int64) string {
	return fmt.Sprintf("QAR %.2f", float64(dirhams)/100)
}

// FormatInstant renders a virtual instant for tables.
func FormatInstant(t time.Time) string {
	return t.Format("Jan 02 15:04")
}
