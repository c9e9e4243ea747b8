// Command seedquiz converts a question bank Excel file into a SQL seed file.
// Each row holds a quiz title, a question prompt, up to four options and the
// letter of the correct option. Rows sharing a title become one quiz.
// Usage: go run ./cmd/seedquiz <questions.xlsx>
// Output: db/seeds/quizzes.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type quizSeed struct {
	id          uuid.UUID
	title       string
	description string
	questions   []questionSeed
}

type questionSeed struct {
	prompt       string
	options      []string
	correctIndex int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedquiz <questions.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/quizzes.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	quizzes, err := parseQuestionSheet(f)
	if err != nil {
		return fmt.Errorf("parse question sheet: %w", err)
	}
	if len(quizzes) == 0 {
		return fmt.Errorf("no valid questions found in %s", xlsxPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSeed(out, quizzes); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}

	total := 0
	for _, q := range quizzes {
		total += len(q.questions)
	}
	log.Printf("Generated %d quizzes with %d questions in %s", len(quizzes), total, outPath)
	return nil
}

// parseQuestionSheet reads the first sheet.
// Columns: A(0)=quiz title, B(1)=quiz description, C(2)=prompt,
// D-G(3..6)=options, H(7)=correct option letter. Data starts at row index 1.
func parseQuestionSheet(f *excelize.File) ([]quizSeed, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var quizzes []quizSeed

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		title := strings.TrimSpace(cellVal(row, 0))
		prompt := strings.TrimSpace(cellVal(row, 2))
		if title == "" || prompt == "" {
			continue
		}

		var options []string
		for col := 3; col <= 6; col++ {
			if opt := strings.TrimSpace(cellVal(row, col)); opt != "" {
				options = append(options, opt)
			}
		}
		if len(options) < 2 {
			log.Printf("WARNING: row %d: fewer than two options, skipping", i+1)
			continue
		}

		correct := correctIndexFromLetter(cellVal(row, 7))
		if correct < 0 || correct >= len(options) {
			log.Printf("WARNING: row %d: correct option %q out of range, skipping", i+1, cellVal(row, 7))
			continue
		}

		pos, ok := index[title]
		if !ok {
			pos = len(quizzes)
			index[title] = pos
			quizzes = append(quizzes, quizSeed{
				// Deterministic IDs keep re-runs idempotent under ON CONFLICT.
				id:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendasim-quiz:"+title)),
				title:       title,
				description: strings.TrimSpace(cellVal(row, 1)),
			})
		}
		quizzes[pos].questions = append(quizzes[pos].questions, questionSeed{
			prompt:       prompt,
			options:      options,
			correctIndex: correct,
		})
	}
	return quizzes, nil
}

func correctIndexFromLetter(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'G' {
		return -1
	}
	return int(s[0] - 'A')
}

func writeSeed(out *os.File, quizzes []quizSeed) error {
	var b strings.Builder
	b.WriteString("-- Quiz seed data generated from the question bank Excel file.\n")
	fmt.Fprintf(&b, "-- %d quizzes. Run: make seed-quiz\n", len(quizzes))
	b.WriteString("BEGIN;\n\n")

	for _, q := range quizzes {
		fmt.Fprintf(&b, "INSERT INTO quizzes (id, title, description, is_active, created_at, updated_at) VALUES\n")
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', TRUE, NOW(), NOW())\n", q.id, escapeSQL(q.title), escapeSQL(q.description))
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

		b.WriteString("INSERT INTO quiz_questions (id, quiz_id, prompt, options, correct_index, position) VALUES\n")
		for i, question := range q.questions {
			if i > 0 {
				b.WriteString(",\n")
			}
			optionsJSON, err := json.Marshal(question.options)
			if err != nil {
				return fmt.Errorf("marshal options for %q: %w", question.prompt, err)
			}
			qid := uuid.NewSHA1(q.id, []byte(question.prompt))
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s'::jsonb, %d, %d)",
				qid, q.id, escapeSQL(question.prompt), escapeSQL(string(optionsJSON)), question.correctIndex, i+1)
		}
		b.WriteString("\nON CONFLICT (id) DO NOTHING;\n\n")
	}

	b.WriteString("COMMIT;\n")
	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
