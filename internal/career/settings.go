package career

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

type TargetLength string

const (
	LengthOnePage      TargetLength = "1-page"
	LengthTwoPage      TargetLength = "2-page"
	LengthUnrestricted TargetLength = "unrestricted"
)

type Tone string

const (
	ToneConcise      Tone = "concise"
	ToneNeutral      Tone = "neutral"
	ToneStorytelling Tone = "storytelling"
	ToneTechnical    Tone = "technical"
)

// Sections lists every resume section a user may include, in display order.
var Sections = []string{
	"contact",
	"summary",
	"skills",
	"experience",
	"projects",
	"education",
	"certifications",
	"interests",
}

// GenerationSettings are the user-controlled knobs for resume and cover letter
// generation. They are never derived from a model call.
type GenerationSettings struct {
	TargetLength             TargetLength `json:"targetLength" mapstructure:"target-length" validate:"oneof=1-page 2-page unrestricted"`
	IncludeSections          []string     `json:"includeSections" mapstructure:"include-sections" validate:"dive,oneof=contact summary skills experience projects education certifications interests"`
	SkillsMaxCount           int          `json:"skillsMaxCount" mapstructure:"skills-max-count" validate:"min=1,max=50"`
	ExperienceMaxItems       int          `json:"experienceMaxItems" mapstructure:"experience-max-items" validate:"min=1,max=10"`
	ProjectsMaxItems         int          `json:"projectsMaxItems" mapstructure:"projects-max-items" validate:"min=0,max=10"`
	Tone                     Tone         `json:"tone" mapstructure:"tone" validate:"oneof=concise neutral storytelling technical"`
	ShowKeywordMatchComments bool         `json:"showKeywordMatchComments" mapstructure:"show-keyword-match-comments"`
	GenerateCoverLetter      bool         `json:"generateCoverLetter" mapstructure:"generate-cover-letter"`
}

// DefaultSettings returns the documented default configuration.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		TargetLength:             LengthOnePage,
		IncludeSections:          []string{"contact", "summary", "skills", "experience", "education"},
		SkillsMaxCount:           15,
		ExperienceMaxItems:       4,
		ProjectsMaxItems:         2,
		Tone:                     ToneNeutral,
		ShowKeywordMatchComments: true,
		GenerateCoverLetter:      true,
	}
}

var validate = validator.New()

// Validate reports every field that falls outside the allowed enums and bounds.
func (s GenerationSettings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid generation settings: %s", strings.Join(msgs, "; "))
}

// Clone returns a deep copy so snapshots do not share the sections slice.
func (s GenerationSettings) Clone() GenerationSettings {
	s.IncludeSections = slices.Clone(s.IncludeSections)
	return s
}

// HasSection reports whether the named section is included.
func (s GenerationSettings) HasSection(name string) bool {
	return slices.Contains(s.IncludeSections, name)
}

// ToggleSection removes the section when present, otherwise appends it.
func (s *GenerationSettings) ToggleSection(name string) {
	if i := slices.Index(s.IncludeSections, name); i >= 0 {
		s.IncludeSections = slices.Delete(slices.Clone(s.IncludeSections), i, i+1)
		return
	}
	s.IncludeSections = append(slices.Clone(s.IncludeSections), name)
}

// ValidateStruct checks the `validate` tags of any record type in this package.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
