package career

import "time"

// PlaceholderScore is the overall score reported while the match summary is
// not computed from the inputs.
const PlaceholderScore = 85

// MatchSummary describes how a generated resume lines up with a job.
// Computed is false when the values are placeholders rather than measurements.
type MatchSummary struct {
	OverallScore             int      `json:"overallScore"`
	HardSkillCoverage        float64  `json:"hardSkillCoverage"`
	SoftSkillCoverage        float64  `json:"softSkillCoverage"`
	TopMatchedKeywords       []string `json:"topMatchedKeywords"`
	MissingImportantKeywords []string `json:"missingImportantKeywords"`
	Computed                 bool     `json:"computed"`
}

type TailoredResume struct {
	ID               string        `json:"id"`
	UserProfileID    string        `json:"userProfileId,omitempty"`
	JobDescriptionID string        `json:"jobDescriptionId,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	Markdown         string        `json:"markdown"`
	MatchSummary     *MatchSummary `json:"matchSummary,omitempty"`
}

type TailoredCoverLetter struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Content   string    `json:"content"`
}
