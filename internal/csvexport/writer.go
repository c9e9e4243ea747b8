package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vendasim/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Session ID",
	"Trainee Name",
	"Trainee Email",
	"Persona",
	"Outcome",
	"Boss Convinced",
	"Acolhimento",
	"Clareza",
	"Argumentacao",
	"Fechamento",
	"Completed At",
}

// Writer wraps csv.Writer for exporting evaluations as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEvaluations converts a batch of export rows to CSV rows and writes them.
func (w *Writer) WriteEvaluations(rows []domain.EvaluationExportRow) error {
	for i := range rows {
		if err := w.csv.Write(evaluationToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func evaluationToRow(e *domain.EvaluationExportRow) []string {
	row := make([]string, len(columns))
	row[0] = e.SessionID.String()
	row[1] = e.TraineeName
	row[2] = e.TraineeEmail
	row[3] = e.PersonaName
	row[4] = string(e.Outcome)
	row[5] = formatBool(e.BossConvinced)
	row[6] = formatRating(e.Acolhimento)
	row[7] = formatRating(e.Clareza)
	row[8] = formatRating(e.Argumentacao)
	row[9] = formatRating(e.Fechamento)
	row[10] = e.CompletedAt.Format(time.RFC3339)
	return row
}

// formatRating distinguishes a missing rating (empty cell) from a real 0.0.
func formatRating(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a label for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_label}_{YYYY-MM-DD}.csv
func BuildFilename(label string) string {
	sanitized := SanitizeFilename(label)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
