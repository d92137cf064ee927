package extraction

import (
	"fmt"

	"github.com/spigell/resume-tailor/internal/career"
)

// Stage names the step at which an extraction failed.
type Stage string

const (
	StageInput    Stage = "input"
	StageModel    Stage = "model"
	StageEmpty    Stage = "empty"
	StageSchema   Stage = "schema"
	StageDecode   Stage = "decode"
	StageRequired Stage = "required"
)

// ExtractionFailure is returned for every failed extraction. No partial record
// is ever produced alongside it.
type ExtractionFailure struct {
	Record career.RecordKind
	Stage  Stage
	Cause  error
}

func (e *ExtractionFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s (%s): %v", e.Record, e.Stage, e.Cause)
	}
	return fmt.Sprintf("extract %s (%s)", e.Record, e.Stage)
}

func (e *ExtractionFailure) Unwrap() error {
	return e.Cause
}
