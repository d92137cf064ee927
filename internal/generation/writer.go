package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/ai"
	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/logger"
	"github.com/spigell/resume-tailor/internal/utils"
)

//go:embed resume_prompt.md
var resumeTemplate string

//go:embed cover_letter_prompt.md
var coverLetterTemplate string

const (
	resumeTemperature      = 0.4
	coverLetterTemperature = 0.7

	// matchedKeywords is how many job keywords the placeholder summary reports.
	matchedKeywords = 5

	letterDateLayout    = "January 2, 2006"
	defaultMaxLogLength = 200
)

// Writer produces tailored documents from an extracted profile and job.
type Writer struct {
	generator ai.Generator
	logger    *zap.Logger
	maxLogLen int
	now       func() time.Time
	newID     func() string
}

func New(generator ai.Generator, log *zap.Logger, maxLogLength int) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Writer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Resume writes a Markdown resume tailored to job. The Markdown is the model
// output as returned, and the match summary is a placeholder.
func (w *Writer) Resume(ctx context.Context, profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings) (*career.TailoredResume, error) {
	if err := requireRecords(profile, job); err != nil {
		return nil, &GenerationFailure{Document: DocumentResume, Cause: err}
	}

	prompt, err := resumePrompt(profile, job, settings)
	if err != nil {
		return nil, &GenerationFailure{Document: DocumentResume, Cause: err}
	}

	markdown, err := w.generate(ctx, DocumentResume, prompt, resumeTemperature)
	if err != nil {
		return nil, &GenerationFailure{Document: DocumentResume, Cause: err}
	}

	return &career.TailoredResume{
		ID:               w.newID(),
		UserProfileID:    profile.ID,
		JobDescriptionID: job.ID,
		CreatedAt:        w.now().UTC(),
		Markdown:         markdown,
		MatchSummary:     placeholderSummary(job),
	}, nil
}

// CoverLetter writes a Markdown cover letter for the application.
func (w *Writer) CoverLetter(ctx context.Context, profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings) (*career.TailoredCoverLetter, error) {
	if err := requireRecords(profile, job); err != nil {
		return nil, &GenerationFailure{Document: DocumentCoverLetter, Cause: err}
	}

	prompt, err := coverLetterPrompt(profile, job, settings, w.now())
	if err != nil {
		return nil, &GenerationFailure{Document: DocumentCoverLetter, Cause: err}
	}

	content, err := w.generate(ctx, DocumentCoverLetter, prompt, coverLetterTemperature)
	if err != nil {
		return nil, &GenerationFailure{Document: DocumentCoverLetter, Cause: err}
	}

	return &career.TailoredCoverLetter{
		ID:        w.newID(),
		CreatedAt: w.now().UTC(),
		Content:   content,
	}, nil
}

func (w *Writer) generate(ctx context.Context, doc Document, prompt string, temperature float32) (string, error) {
	log := logger.ForRecord(w.logger, string(doc))

	log.Debug("generation request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.Float32("temperature", temperature),
	)

	text, err := w.generator.Generate(ctx, &ai.Request{Prompt: prompt, Temperature: ai.Temperature(temperature)})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no response text generated")
	}

	log.Debug("generation response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", utils.TruncateForLog(text, w.maxLogLen)),
	)
	return text, nil
}

func requireRecords(profile *career.UserProfile, job *career.JobDescription) error {
	switch {
	case profile == nil && job == nil:
		return errors.New("profile and job description are required")
	case profile == nil:
		return errors.New("profile is required")
	case job == nil:
		return errors.New("job description is required")
	}
	return nil
}

func placeholderSummary(job *career.JobDescription) *career.MatchSummary {
	return &career.MatchSummary{
		OverallScore:             career.PlaceholderScore,
		HardSkillCoverage:        0,
		SoftSkillCoverage:        0,
		TopMatchedKeywords:       job.TopKeywords(matchedKeywords),
		MissingImportantKeywords: []string{},
		Computed:                 false,
	}
}

func resumePrompt(profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings) (string, error) {
	profileJSON, jobJSON, err := marshalRecords(profile, job)
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		"{{TONE}}", string(settings.Tone),
		"{{SKILLS_MAX}}", strconv.Itoa(settings.SkillsMaxCount),
		"{{EXPERIENCE_MAX}}", strconv.Itoa(settings.ExperienceMaxItems),
		"{{PROJECTS_MAX}}", strconv.Itoa(settings.ProjectsMaxItems),
		"{{TARGET_LENGTH}}", string(settings.TargetLength),
		"{{SECTIONS}}", strings.Join(settings.IncludeSections, ", "),
		"{{MATCH_COMMENTS}}", strconv.FormatBool(settings.ShowKeywordMatchComments),
		"{{PROFILE_JSON}}", profileJSON,
		"{{JOB_JSON}}", jobJSON,
	)
	return r.Replace(resumeTemplate), nil
}

func coverLetterPrompt(profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings, today time.Time) (string, error) {
	profileJSON, jobJSON, err := marshalRecords(profile, job)
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{COMPANY}}", job.Company,
		"{{CANDIDATE}}", profile.FullName,
		"{{TONE}}", string(settings.Tone),
		"{{TODAY}}", today.Format(letterDateLayout),
		"{{PROFILE_JSON}}", profileJSON,
		"{{JOB_JSON}}", jobJSON,
	)
	return r.Replace(coverLetterTemplate), nil
}

func marshalRecords(profile *career.UserProfile, job *career.JobDescription) (string, string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", "", fmt.Errorf("marshal profile: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", "", fmt.Errorf("marshal job description: %w", err)
	}
	return string(profileJSON), string(jobJSON), nil
}
