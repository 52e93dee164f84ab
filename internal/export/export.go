// Package export renders the journal as JSON, PDF and shareable text.
package export

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmpty is returned when there is nothing to export. EmptyMessage is what
// the user should see in that case.
var ErrEmpty = errors.New("no reflections to export")

const EmptyMessage = "No reflections to export. Add some reflections first."

const (
	documentTitle   = "My Financial Reflections"
	documentCreator = "Financial Regret Manager"
)

// FileName returns the suggested file name for an export made at now.
func FileName(ext string, now time.Time) string {
	return fmt.Sprintf("Financial_Reflections_%s.%s", now.Format("2006-01-02"), ext)
}
