package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, LengthOnePage, s.TargetLength)
	assert.Equal(t, ToneNeutral, s.Tone)
	assert.Equal(t, []string{"contact", "summary", "skills", "experience", "education"}, s.IncludeSections)
	assert.Equal(t, 15, s.SkillsMaxCount)
	assert.Equal(t, 4, s.ExperienceMaxItems)
	assert.Equal(t, 2, s.ProjectsMaxItems)
	assert.True(t, s.ShowKeywordMatchComments)
	assert.True(t, s.GenerateCoverLetter)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationSettings)
		wantErr string
	}{
		{name: "unknown tone", mutate: func(s *GenerationSettings) { s.Tone = "casual" }, wantErr: "Tone"},
		{name: "unknown length", mutate: func(s *GenerationSettings) { s.TargetLength = "3-page" }, wantErr: "TargetLength"},
		{name: "zero experience", mutate: func(s *GenerationSettings) { s.ExperienceMaxItems = 0 }, wantErr: "ExperienceMaxItems"},
		{name: "too many projects", mutate: func(s *GenerationSettings) { s.ProjectsMaxItems = 11 }, wantErr: "ProjectsMaxItems"},
		{name: "unknown section", mutate: func(s *GenerationSettings) { s.IncludeSections = []string{"hobbies"} }, wantErr: "IncludeSections"},
		{name: "zero projects allowed", mutate: func(s *GenerationSettings) { s.ProjectsMaxItems = 0 }},
		{name: "no sections allowed", mutate: func(s *GenerationSettings) { s.IncludeSections = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToggleSection(t *testing.T) {
	s := DefaultSettings()
	snapshot := s.Clone()

	s.ToggleSection("projects")
	assert.True(t, s.HasSection("projects"))

	s.ToggleSection("summary")
	assert.False(t, s.HasSection("summary"))

	assert.True(t, snapshot.HasSection("summary"), "clone must not share the sections slice")
	assert.False(t, snapshot.HasSection("projects"))
}

func TestPreview(t *testing.T) {
	profile := &UserProfile{
		FullName:   "Jane Doe",
		Skills:     []Skill{{Name: "Go"}, {Name: "SQL"}},
		Experience: []Experience{{Title: "Engineer", Company: "Acme"}},
	}
	assert.Equal(t, []string{
		"Name: Jane Doe",
		"Skills Found: 2",
		"Experience Entries: 1",
		"Education Entries: 0",
	}, Preview(profile))

	job := &JobDescription{
		Title:    "Backend Engineer",
		Company:  "Initech",
		Keywords: []string{"go", "k8s", "sql", "grpc", "aws", "linux", "redis", "kafka", "terraform", "docker"},
	}
	lines := Preview(job)
	require.Len(t, lines, 3)
	assert.Equal(t, "Role: Backend Engineer at Initech", lines[0])
	assert.Equal(t, "Keywords found: 10", lines[1])
	assert.Equal(t, "go, k8s, sql, grpc, aws, linux, redis, kafka +2 more", lines[2])

	assert.Equal(t, RecordProfile, profile.Kind())
	assert.Equal(t, RecordJob, job.Kind())
}

func TestTopKeywords(t *testing.T) {
	job := &JobDescription{Keywords: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, job.TopKeywords(5))
	assert.Empty(t, (*JobDescription)(nil).TopKeywords(5))
	assert.NotNil(t, (&JobDescription{}).TopKeywords(5))
}

func TestValidateStructRequiresNames(t *testing.T) {
	assert.Error(t, ValidateStruct(&UserProfile{}))
	assert.NoError(t, ValidateStruct(&UserProfile{FullName: "Jane"}))
	assert.Error(t, ValidateStruct(&JobDescription{Title: "Engineer"}))
	assert.NoError(t, ValidateStruct(&JobDescription{Title: "Engineer", Company: "Acme"}))
}
