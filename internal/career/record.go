package career

import (
	"fmt"
	"strings"
)

type RecordKind string

const (
	RecordProfile RecordKind = "profile"
	RecordJob     RecordKind = "job"
)

// Record is the closed set of extracted records: *UserProfile or *JobDescription.
type Record interface {
	Kind() RecordKind
	sealed()
}

const previewKeywords = 8

// Preview returns short human-readable lines describing an extracted record.
func Preview(r Record) []string {
	switch rec := r.(type) {
	case *UserProfile:
		if rec == nil {
			return nil
		}
		return []string{
			fmt.Sprintf("Name: %s", rec.FullName),
			fmt.Sprintf("Skills Found: %d", len(rec.Skills)),
			fmt.Sprintf("Experience Entries: %d", len(rec.Experience)),
			fmt.Sprintf("Education Entries: %d", len(rec.Education)),
		}
	case *JobDescription:
		if rec == nil {
			return nil
		}
		lines := []string{
			fmt.Sprintf("Role: %s at %s", rec.Title, rec.Company),
			fmt.Sprintf("Keywords found: %d", len(rec.Keywords)),
		}
		if len(rec.Keywords) > 0 {
			kw := strings.Join(rec.TopKeywords(previewKeywords), ", ")
			if extra := len(rec.Keywords) - previewKeywords; extra > 0 {
				kw = fmt.Sprintf("%s +%d more", kw, extra)
			}
			lines = append(lines, kw)
		}
		return lines
	default:
		return nil
	}
}
