// Package task holds the structured work-order record, the parser that
// extracts it from the model's labeled-line response, and the row shapes
// written to the task log.
package task

import "time"

// Priority is derived from the raw priority text by keyword matching,
// never passed through verbatim.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the Ukrainian display value written to the sheet.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "високий"
	case PriorityMedium:
		return "середній"
	default:
		return "звичайний"
	}
}

// StructuredTask is a validated five-field record. It exists only in a
// fully-populated form: the parser rejects anything without a name and
// fills every other field with its default.
type StructuredTask struct {
	Name     string
	Tag      string
	Deadline string
	Priority Priority
	Desc     string
}

// Timestamp layout used in the first column of every row.
const timeLayout = "2006-01-02 15:04:05"

// Row renders the six-column structured shape:
// timestamp, name, tag, deadline, priority, description.
func (t StructuredTask) Row(now time.Time) []string {
	return []string{
		now.Format(timeLayout),
		t.Name,
		t.Tag,
		t.Deadline,
		t.Priority.String(),
		t.Desc,
	}
}

// FallbackRow renders the raw shape used when structuring was skipped:
// the structured columns stay blank and the raw text lands in the
// description column. Column count matches the structured shape.
func FallbackRow(now time.Time, rawText string) []string {
	return []string{now.Format(timeLayout), "", "", "", "", rawText}
}
