package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-tailor/internal/career"
)

func TestArtifactFilenames(t *testing.T) {
	resume := &career.TailoredResume{Markdown: "# Jane"}
	letter := &career.TailoredCoverLetter{Content: "Dear Hiring Manager"}

	tests := []struct {
		name       string
		job        *career.JobDescription
		wantResume string
		wantLetter string
	}{
		{
			name:       "single word company",
			job:        &career.JobDescription{Title: "Backend Engineer", Company: "Initech"},
			wantResume: "resume-initech.md",
			wantLetter: "cover-letter-initech.md",
		},
		{
			name:       "spaces collapse to hyphens",
			job:        &career.JobDescription{Company: "  Acme   Widget Co "},
			wantResume: "resume-acme-widget-co.md",
			wantLetter: "cover-letter-acme-widget-co.md",
		},
		{
			name:       "blank company",
			job:        &career.JobDescription{Company: "  "},
			wantResume: "resume-tailored.md",
			wantLetter: "cover-letter-tailored.md",
		},
		{
			name:       "no job",
			wantResume: "resume-tailored.md",
			wantLetter: "cover-letter-tailored.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, err := ResumeArtifact(resume, tt.job)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResume, ra.Filename)
			assert.Equal(t, "text/markdown", ra.ContentType)
			assert.Equal(t, "# Jane", ra.Content)

			ca, err := CoverLetterArtifact(letter, tt.job)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLetter, ca.Filename)
			assert.Equal(t, "Dear Hiring Manager", ca.Content)
		})
	}
}

func TestMissingDocuments(t *testing.T) {
	_, err := ResumeArtifact(nil, &career.JobDescription{Company: "Initech"})
	assert.Error(t, err)

	_, err = CoverLetterArtifact(nil, nil)
	assert.Error(t, err)
}

func TestWriteKeepsContentVerbatim(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	content := "# Jane Doe\n\n<!-- matched: go -->\n  trailing  \n"

	path, err := Write(dir, Artifact{Filename: "resume-initech.md", ContentType: ContentType, Content: content})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume-initech.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	_, err = Write(dir, Artifact{})
	assert.Error(t, err)
}
