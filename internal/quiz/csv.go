package quiz

import (
	"bufio"
	"io"
	"strings"

	"art-atlas/internal/domain"
)

// ExportFilename is the suggested download name of WriteCSV output.
const ExportFilename = "art_quiz.csv"

const answerSeparator = " | "

// WriteCSV writes the question log with every field quoted. encoding/csv
// only quotes when needed, and the export format quotes unconditionally.
func WriteCSV(w io.Writer, questions []*domain.Question) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Question,Correct Answer,Possible Answers\n"); err != nil {
		return err
	}
	for _, q := range questions {
		line := quote(q.Prompt) + "," + quote(q.CorrectAnswer) + "," + quote(strings.Join(q.Answers, answerSeparator)) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
