package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/utils"
)

const (
	ContentType = "text/markdown"

	fallbackStem = "tailored"
)

// Artifact is a generated document ready to be saved by the user.
type Artifact struct {
	Filename    string
	ContentType string
	Content     string
}

// ResumeArtifact packages the resume Markdown as resume-<company>.md.
func ResumeArtifact(resume *career.TailoredResume, job *career.JobDescription) (Artifact, error) {
	if resume == nil {
		return Artifact{}, errors.New("no resume to export")
	}
	return Artifact{
		Filename:    "resume-" + stem(job) + ".md",
		ContentType: ContentType,
		Content:     resume.Markdown,
	}, nil
}

// CoverLetterArtifact packages the cover letter as cover-letter-<company>.md.
func CoverLetterArtifact(letter *career.TailoredCoverLetter, job *career.JobDescription) (Artifact, error) {
	if letter == nil {
		return Artifact{}, errors.New("no cover letter to export")
	}
	return Artifact{
		Filename:    "cover-letter-" + stem(job) + ".md",
		ContentType: ContentType,
		Content:     letter.Content,
	}, nil
}

func stem(job *career.JobDescription) string {
	if job == nil {
		return fallbackStem
	}
	return utils.Slug(job.Company, fallbackStem)
}

// Write stores the artifact content unchanged under dir and returns the path.
func Write(dir string, a Artifact) (string, error) {
	if a.Filename == "" {
		return "", errors.New("artifact has no filename")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, []byte(a.Content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
