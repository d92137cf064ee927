package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/ai"
	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/logger"
	"github.com/spigell/resume-tailor/internal/utils"
)

//go:embed profile_prompt.md
var profilePrompt string

//go:embed job_prompt.md
var jobPrompt string

const (
	inputPlaceholder    = "{{INPUT_TEXT}}"
	defaultMaxLogLength = 200
)

// Extractor turns free text into structured career records through a
// schema-constrained model request.
type Extractor struct {
	generator ai.Generator
	logger    *zap.Logger
	maxLogLen int
	newID     func() string

	profileSchema *ai.Schema
	jobSchema     *ai.Schema
}

func New(generator ai.Generator, log *zap.Logger, maxLogLength int) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Extractor{
		generator:     generator,
		logger:        log,
		maxLogLen:     maxLogLength,
		newID:         uuid.NewString,
		profileSchema: ProfileSchema(),
		jobSchema:     JobSchema(),
	}
}

// Profile extracts a UserProfile from resume or bio text.
func (e *Extractor) Profile(ctx context.Context, text string) (*career.UserProfile, error) {
	profile := &career.UserProfile{}
	if err := e.extract(ctx, career.RecordProfile, profilePrompt, e.profileSchema, text, profile); err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(profile.FullName)
	if err := checkRequired(career.RecordProfile, profile); err != nil {
		return nil, err
	}

	profile.ID = e.newID()
	return profile, nil
}

// Job extracts a JobDescription from posting text. PastedText holds the
// input unchanged.
func (e *Extractor) Job(ctx context.Context, text string) (*career.JobDescription, error) {
	job := &career.JobDescription{}
	if err := e.extract(ctx, career.RecordJob, jobPrompt, e.jobSchema, text, job); err != nil {
		return nil, err
	}

	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if err := checkRequired(career.RecordJob, job); err != nil {
		return nil, err
	}

	job.ID = e.newID()
	job.PastedText = text
	return job, nil
}

func (e *Extractor) extract(ctx context.Context, kind career.RecordKind, template string, schema *ai.Schema, text string, out any) error {
	if strings.TrimSpace(text) == "" {
		return &ExtractionFailure{Record: kind, Stage: StageInput, Cause: errors.New("input text is empty")}
	}

	log := logger.ForRecord(e.logger, string(kind))
	prompt := buildPrompt(template, text)

	log.Debug("extraction request",
		zap.Int("input_length", utf8.RuneCountInString(text)),
		zap.String("input_preview", utils.TruncateForLog(text, e.maxLogLen)),
	)

	raw, err := e.generator.Generate(ctx, &ai.Request{Prompt: prompt, Schema: schema})
	if err != nil {
		return &ExtractionFailure{Record: kind, Stage: StageModel, Cause: err}
	}

	cleaned := extractJSON(raw)
	if cleaned == "" {
		return &ExtractionFailure{Record: kind, Stage: StageEmpty, Cause: errors.New("no response text generated")}
	}

	if err := validateAgainst(schema, cleaned); err != nil {
		log.Debug("extraction response rejected",
			zap.String("response_preview", utils.TruncateForLog(cleaned, e.maxLogLen)),
			zap.Error(err),
		)
		return &ExtractionFailure{Record: kind, Stage: StageSchema, Cause: err}
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ExtractionFailure{Record: kind, Stage: StageDecode, Cause: err}
	}

	log.Debug("extraction response accepted", zap.Int("response_length", len(cleaned)))
	return nil
}

func buildPrompt(template, text string) string {
	if strings.TrimSpace(template) == "" {
		template = "Input Text:\n" + inputPlaceholder
	}
	return strings.ReplaceAll(template, inputPlaceholder, text)
}

// validateAgainst checks the document against the JSON Schema rendering of
// the declared response schema.
func validateAgainst(schema *ai.Schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema.JSONSchema()),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb bytes.Buffer
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %s", desc.Field(), desc.Description())
	}
	return errors.New(sb.String())
}

func checkRequired(kind career.RecordKind, record any) error {
	if err := career.ValidateStruct(record); err != nil {
		return &ExtractionFailure{Record: kind, Stage: StageRequired, Cause: err}
	}
	return nil
}

// extractJSON strips a Markdown code fence some models wrap JSON in even
// when a JSON response type was requested.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
