package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/logger"
)

var (
	// ErrBusy is returned when the requested action is already in progress.
	ErrBusy = errors.New("action already in progress")
	// ErrNotReady is returned by Generate until both a profile and a job are present.
	ErrNotReady = errors.New("profile and job description are required before generating")
)

type Action string

const (
	ActionParseProfile Action = "parse-profile"
	ActionParseJob     Action = "parse-job"
	ActionGenerate     Action = "generate"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusInProgress Status = "in-progress"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// ActionState is the observable state of one action.
type ActionState struct {
	Status     Status
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Extractor is the extraction capability a session depends on.
type Extractor interface {
	Profile(ctx context.Context, text string) (*career.UserProfile, error)
	Job(ctx context.Context, text string) (*career.JobDescription, error)
}

// Writer is the generation capability a session depends on.
type Writer interface {
	Resume(ctx context.Context, profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings) (*career.TailoredResume, error)
	CoverLetter(ctx context.Context, profile *career.UserProfile, job *career.JobDescription, settings career.GenerationSettings) (*career.TailoredCoverLetter, error)
}

// Session holds the latest result of every action and sequences them.
// Each action replaces only its own output, and only on success.
type Session struct {
	extractor Extractor
	writer    Writer
	logger    *zap.Logger
	now       func() time.Time

	mu          sync.Mutex
	profile     *career.UserProfile
	job         *career.JobDescription
	settings    career.GenerationSettings
	resume      *career.TailoredResume
	coverLetter *career.TailoredCoverLetter
	states      map[Action]ActionState
}

// New returns a session that starts with the given settings. Invalid settings
// are rejected.
func New(extractor Extractor, writer Writer, settings career.GenerationSettings, log *zap.Logger) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Session{
		extractor: extractor,
		writer:    writer,
		logger:    log,
		now:       time.Now,
		settings:  settings.Clone(),
		states: map[Action]ActionState{
			ActionParseProfile: {Status: StatusIdle},
			ActionParseJob:     {Status: StatusIdle},
			ActionGenerate:     {Status: StatusIdle},
		},
	}, nil
}

// ParseProfile extracts a profile from text and, on success, replaces the
// current one.
func (s *Session) ParseProfile(ctx context.Context, text string) (*career.UserProfile, error) {
	if err := s.begin(ActionParseProfile); err != nil {
		return nil, err
	}

	profile, err := s.extractor.Profile(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.profile = profile
	}
	s.finishLocked(ActionParseProfile, err)
	return profile, err
}

// ParseJob extracts a job description from text and, on success, replaces
// the current one.
func (s *Session) ParseJob(ctx context.Context, text string) (*career.JobDescription, error) {
	return s.ParseJobFrom(ctx, "", text)
}

// ParseJobFrom is ParseJob for text loaded from source, which is recorded on
// the job when not empty.
func (s *Session) ParseJobFrom(ctx context.Context, source, text string) (*career.JobDescription, error) {
	if err := s.begin(ActionParseJob); err != nil {
		return nil, err
	}

	job, err := s.extractor.Job(ctx, text)
	if err == nil && source != "" {
		job.Source = source
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.job = job
	}
	s.finishLocked(ActionParseJob, err)
	return job, err
}

// Generate writes the resume and, when enabled, the cover letter
// concurrently. Results are published together only when every requested
// document succeeded; a failure in one cancels the other.
func (s *Session) Generate(ctx context.Context) (*career.TailoredResume, *career.TailoredCoverLetter, error) {
	s.mu.Lock()
	if s.states[ActionGenerate].Status == StatusInProgress {
		s.mu.Unlock()
		return nil, nil, ErrBusy
	}
	if s.profile == nil || s.job == nil {
		s.mu.Unlock()
		return nil, nil, ErrNotReady
	}
	profile, job, settings := s.profile, s.job, s.settings.Clone()
	s.startLocked(ActionGenerate)
	s.mu.Unlock()

	log := logger.ForAction(s.logger, string(ActionGenerate))
	log.Info("generating documents",
		zap.String("company", job.Company),
		zap.Bool("cover_letter", settings.GenerateCoverLetter),
	)

	var (
		resume *career.TailoredResume
		letter *career.TailoredCoverLetter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.writer.Resume(gctx, profile, job, settings)
		if err != nil {
			return err
		}
		resume = r
		return nil
	})
	if settings.GenerateCoverLetter {
		g.Go(func() error {
			l, err := s.writer.CoverLetter(gctx, profile, job, settings)
			if err != nil {
				return err
			}
			letter = l
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.finishLocked(ActionGenerate, err)
		return nil, nil, err
	}

	s.resume = resume
	s.coverLetter = letter
	s.finishLocked(ActionGenerate, nil)
	return resume, letter, nil
}

// UpdateSettings applies edit to a copy of the current settings and keeps the
// result only when it validates.
func (s *Session) UpdateSettings(edit func(*career.GenerationSettings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Clone()
	edit(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	s.settings = next
	return nil
}

func (s *Session) Settings() career.GenerationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

func (s *Session) Profile() *career.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) Job() *career.JobDescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

func (s *Session) Resume() *career.TailoredResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume
}

func (s *Session) CoverLetter() *career.TailoredCoverLetter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coverLetter
}

func (s *Session) State(action Action) ActionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[action]
}

// CanGenerate reports whether Generate would start right now.
func (s *Session) CanGenerate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.job != nil && s.states[ActionGenerate].Status != StatusInProgress
}

func (s *Session) begin(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states[action].Status == StatusInProgress {
		return ErrBusy
	}
	s.startLocked(action)
	return nil
}

func (s *Session) startLocked(action Action) {
	s.states[action] = ActionState{Status: StatusInProgress, StartedAt: s.now()}
}

func (s *Session) finishLocked(action Action, err error) {
	state := s.states[action]
	state.FinishedAt = s.now()
	state.Err = err

	log := logger.ForAction(s.logger, string(action))
	if err != nil {
		state.Status = StatusFailed
		log.Error("action failed", zap.Error(err))
	} else {
		state.Status = StatusSucceeded
		log.Info("action succeeded", zap.Duration("took", state.FinishedAt.Sub(state.StartedAt)))
	}
	s.states[action] = state
}
