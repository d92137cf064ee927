package generation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/ai"
	"github.com/spigell/resume-tailor/internal/career"
)

type recordingGenerator struct {
	mu       sync.Mutex
	requests []*ai.Request
	text     string
	err      error
}

func (g *recordingGenerator) Generate(_ context.Context, req *ai.Request) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return g.text, g.err
}

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.FixedZone("CET", 3600))

func newTestWriter(gen ai.Generator) *Writer {
	w := New(gen, zap.NewNop(), 0)
	w.now = func() time.Time { return fixedNow }
	w.newID = func() string { return "doc-id" }
	return w
}

func testRecords() (*career.UserProfile, *career.JobDescription) {
	profile := &career.UserProfile{
		ID:       "profile-1",
		FullName: "Jane Doe",
		Skills:   []career.Skill{{Name: "Go"}},
		Experience: []career.Experience{
			{Title: "Software Engineer", Company: "Acme", Bullets: []string{"Shipped the billing service"}},
		},
	}
	job := &career.JobDescription{
		ID:       "job-1",
		Title:    "Backend Engineer",
		Company:  "Initech",
		Keywords: []string{"go", "postgres", "kafka", "grpc", "k8s", "terraform"},
	}
	return profile, job
}

func TestResumeKeepsMarkdownVerbatim(t *testing.T) {
	markdown := "# Jane Doe\n\n## Experience\n- Shipped the billing service <!-- matched: go -->\n\n"
	gen := &recordingGenerator{text: markdown}
	w := newTestWriter(gen)
	profile, job := testRecords()

	resume, err := w.Resume(context.Background(), profile, job, career.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, markdown, resume.Markdown)
	assert.Equal(t, "doc-id", resume.ID)
	assert.Equal(t, "profile-1", resume.UserProfileID)
	assert.Equal(t, "job-1", resume.JobDescriptionID)
	assert.Equal(t, fixedNow.UTC(), resume.CreatedAt)

	summary := resume.MatchSummary
	require.NotNil(t, summary)
	assert.False(t, summary.Computed)
	assert.Equal(t, 85, summary.OverallScore)
	assert.Zero(t, summary.HardSkillCoverage)
	assert.Zero(t, summary.SoftSkillCoverage)
	assert.Equal(t, []string{"go", "postgres", "kafka", "grpc", "k8s"}, summary.TopMatchedKeywords)
	assert.Empty(t, summary.MissingImportantKeywords)

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.False(t, req.Structured())
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.4, *req.Temperature, 1e-6)
}

func TestResumePromptCarriesSettings(t *testing.T) {
	gen := &recordingGenerator{text: "# Jane Doe"}
	w := newTestWriter(gen)
	profile, job := testRecords()

	settings := career.DefaultSettings()
	settings.Tone = career.ToneTechnical
	settings.TargetLength = career.LengthTwoPage
	settings.SkillsMaxCount = 12
	settings.ExperienceMaxItems = 3
	settings.ProjectsMaxItems = 0
	settings.ShowKeywordMatchComments = false
	settings.IncludeSections = []string{"summary", "experience"}

	_, err := w.Resume(context.Background(), profile, job, settings)
	require.NoError(t, err)

	prompt := gen.requests[0].Prompt
	for _, want := range []string{
		"- Tone: technical",
		"- Max Skills: 12",
		"- Max Experience Entries: 3",
		"- Max Project Entries: 0",
		"- Target Length: 2-page",
		"- Included Sections: summary, experience",
		"- Show Keyword Match Comments: false",
		`"fullName":"Jane Doe"`,
		`"company":"Initech"`,
		"<!-- matched: keyword -->",
	} {
		assert.Contains(t, prompt, want)
	}
	assert.NotContains(t, prompt, "{{")
}

func TestResumeWithoutKeywords(t *testing.T) {
	w := newTestWriter(&recordingGenerator{text: "# Jane"})
	profile, job := testRecords()
	job.Keywords = nil

	resume, err := w.Resume(context.Background(), profile, job, career.DefaultSettings())
	require.NoError(t, err)
	assert.NotNil(t, resume.MatchSummary.TopMatchedKeywords)
	assert.Empty(t, resume.MatchSummary.TopMatchedKeywords)
}

func TestCoverLetterPrompt(t *testing.T) {
	content := "March 14, 2026\n\nDear Hiring Manager at Initech,\n"
	gen := &recordingGenerator{text: content}
	w := newTestWriter(gen)
	profile, job := testRecords()

	settings := career.DefaultSettings()
	settings.Tone = career.ToneStorytelling

	letter, err := w.CoverLetter(context.Background(), profile, job, settings)
	require.NoError(t, err)

	assert.Equal(t, content, letter.Content)
	assert.Equal(t, "doc-id", letter.ID)
	assert.Equal(t, fixedNow.UTC(), letter.CreatedAt)

	req := gen.requests[0]
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.7, *req.Temperature, 1e-6)
	assert.Contains(t, req.Prompt, "Job: Backend Engineer at Initech")
	assert.Contains(t, req.Prompt, "Candidate: Jane Doe")
	assert.Contains(t, req.Prompt, "Use a storytelling tone.")
	assert.Contains(t, req.Prompt, `"Hiring Manager at Initech"`)
	assert.Contains(t, req.Prompt, "use today's date: March 14, 2026.")
	assert.NotContains(t, req.Prompt, "{{")
}

func TestGenerationFailures(t *testing.T) {
	profile, job := testRecords()

	t.Run("missing records", func(t *testing.T) {
		gen := &recordingGenerator{text: "unused"}
		w := newTestWriter(gen)

		_, err := w.Resume(context.Background(), nil, job, career.DefaultSettings())
		var failure *GenerationFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, DocumentResume, failure.Document)

		_, err = w.CoverLetter(context.Background(), profile, nil, career.DefaultSettings())
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, DocumentCoverLetter, failure.Document)

		assert.Empty(t, gen.requests)
	})

	t.Run("empty response", func(t *testing.T) {
		w := newTestWriter(&recordingGenerator{text: " \n"})

		resume, err := w.Resume(context.Background(), profile, job, career.DefaultSettings())
		assert.Nil(t, resume)
		var failure *GenerationFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, DocumentResume, failure.Document)
	})

	t.Run("model error", func(t *testing.T) {
		cause := errors.New("quota exceeded")
		w := newTestWriter(&recordingGenerator{err: cause})

		letter, err := w.CoverLetter(context.Background(), profile, job, career.DefaultSettings())
		assert.Nil(t, letter)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "generate cover-letter: quota exceeded")
	})
}
