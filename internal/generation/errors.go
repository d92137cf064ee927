package generation

import "fmt"

// Document identifies which output a generation call was producing.
type Document string

const (
	DocumentResume      Document = "resume"
	DocumentCoverLetter Document = "cover-letter"
)

// GenerationFailure reports a failed resume or cover letter generation.
type GenerationFailure struct {
	Document Document
	Cause    error
}

func (e *GenerationFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate %s: %v", e.Document, e.Cause)
	}
	return fmt.Sprintf("generate %s", e.Document)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Cause
}
