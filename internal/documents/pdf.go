package documents

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

func pdfFileText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	return readPages(r), nil
}

func pdfText(data io.ReaderAt, size int64) (string, error) {
	r, err := pdf.NewReader(data, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	return readPages(r), nil
}

// readPages concatenates the plain text of every readable page. Pages that
// fail to decode are skipped.
func readPages(r *pdf.Reader) string {
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
