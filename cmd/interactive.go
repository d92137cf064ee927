package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/session"
)

const (
	PromptParseProfile = "Parse profile"
	PromptParseJob     = "Parse job description"
	PromptSettings     = "Edit settings"
	PromptGenerate     = "Generate"
	PromptShow         = "Show results"
	PromptSave         = "Save documents"
	PromptExit         = "Exit"
	PromptBack         = "back"
)

var errExit = errors.New("exit requested")

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Work on one application step by step",
	Run: func(_ *cobra.Command, _ []string) {
		interactive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func interactive() {
	ctx := context.Background()
	logger := newLogger()

	app, err := newApplication(ctx, logger)
	if err != nil {
		logger.Fatal("initializing", zap.Error(err))
	}

	sess, err := app.newSession()
	if err != nil {
		logger.Fatal("creating a session", zap.Error(err))
	}

	for {
		menu := promptui.Select{
			Label: "What next?",
			Items: []string{PromptParseProfile, PromptParseJob, PromptSettings, PromptGenerate, PromptShow, PromptSave, PromptExit},
			Size:  7,
		}

		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleMenu(ctx, action, app, sess); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			// Failures are notices; the menu keeps going.
			logger.Warn("step failed", zap.String("step", action), zap.Error(err))
		}
	}
}

func handleMenu(ctx context.Context, action string, app *application, sess *session.Session) error {
	switch action {
	case PromptParseProfile:
		doc, err := askDocument("Resume file, URL or -")
		if err != nil {
			return err
		}
		text, err := app.loader.Load(ctx, doc)
		if err != nil {
			return err
		}
		profile, err := sess.ParseProfile(ctx, text.Text)
		if err != nil {
			return err
		}
		return printRecord(profile, false)
	case PromptParseJob:
		doc, err := askDocument("Job posting file, URL or -")
		if err != nil {
			return err
		}
		text, err := app.loader.Load(ctx, doc)
		if err != nil {
			return err
		}
		job, err := sess.ParseJobFrom(ctx, text.Source, text.Text)
		if err != nil {
			return err
		}
		return printRecord(job, false)
	case PromptSettings:
		return editSettings(sess)
	case PromptGenerate:
		if !sess.CanGenerate() {
			return session.ErrNotReady
		}
		resume, letter, err := sess.Generate(ctx)
		if err != nil {
			return err
		}
		app.logger.Info("documents generated",
			zap.Int("resume_length", len(resume.Markdown)),
			zap.Bool("cover_letter", letter != nil),
		)
		return nil
	case PromptShow:
		return showResults(sess)
	case PromptSave:
		if sess.Resume() == nil {
			return errors.New("nothing generated yet")
		}
		paths, err := saveArtifacts(sess.Job(), sess.Resume(), sess.CoverLetter(), outputDir())
		if err != nil {
			return err
		}
		for _, p := range paths {
			app.logger.Info("document saved", zap.String("path", p))
		}
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func askDocument(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if s == "" {
				return errors.New("a source is required")
			}
			return nil
		},
	}
	return p.Run()
}

func showResults(sess *session.Session) error {
	resume := sess.Resume()
	if resume == nil {
		return errors.New("nothing generated yet")
	}

	fmt.Println(resume.Markdown)
	if s := resume.MatchSummary; s != nil {
		label := "score"
		if !s.Computed {
			label = "score (placeholder)"
		}
		fmt.Printf("\n%s: %d, matched keywords: %v\n", label, s.OverallScore, s.TopMatchedKeywords)
	}

	if letter := sess.CoverLetter(); letter != nil {
		fmt.Println()
		fmt.Println(letter.Content)
	}
	return nil
}

func editSettings(sess *session.Session) error {
	for {
		s := sess.Settings()
		items := []string{
			fmt.Sprintf("Tone: %s", s.Tone),
			fmt.Sprintf("Target length: %s", s.TargetLength),
			fmt.Sprintf("Max skills: %d", s.SkillsMaxCount),
			fmt.Sprintf("Max experience entries: %d", s.ExperienceMaxItems),
			fmt.Sprintf("Max project entries: %d", s.ProjectsMaxItems),
			fmt.Sprintf("Keyword match comments: %t", s.ShowKeywordMatchComments),
			fmt.Sprintf("Cover letter: %t", s.GenerateCoverLetter),
			fmt.Sprintf("Sections: %v", s.IncludeSections),
			PromptBack,
		}

		menu := promptui.Select{Label: "Settings", Items: items, Size: len(items)}
		idx, _, err := menu.Run()
		if err != nil {
			return err
		}

		var edit func(*career.GenerationSettings)
		switch idx {
		case 0:
			v, err := choose("Tone", career.ToneConcise, career.ToneNeutral, career.ToneStorytelling, career.ToneTechnical)
			if err != nil {
				return err
			}
			edit = func(gs *career.GenerationSettings) { gs.Tone = career.Tone(v) }
		case 1:
			v, err := choose("Target length", career.LengthOnePage, career.LengthTwoPage, career.LengthUnrestricted)
			if err != nil {
				return err
			}
			edit = func(gs *career.GenerationSettings) { gs.TargetLength = career.TargetLength(v) }
		case 2, 3, 4:
			n, err := askNumber(items[idx])
			if err != nil {
				return err
			}
			edit = func(gs *career.GenerationSettings) {
				switch idx {
				case 2:
					gs.SkillsMaxCount = n
				case 3:
					gs.ExperienceMaxItems = n
				default:
					gs.ProjectsMaxItems = n
				}
			}
		case 5:
			edit = func(gs *career.GenerationSettings) { gs.ShowKeywordMatchComments = !gs.ShowKeywordMatchComments }
		case 6:
			edit = func(gs *career.GenerationSettings) { gs.GenerateCoverLetter = !gs.GenerateCoverLetter }
		case 7:
			section, err := choose("Toggle section", career.Sections...)
			if err != nil {
				return err
			}
			edit = func(gs *career.GenerationSettings) { gs.ToggleSection(section) }
		default:
			return nil
		}

		if err := sess.UpdateSettings(edit); err != nil {
			fmt.Println(err)
		}
	}
}

func choose[T ~string](label string, options ...T) (string, error) {
	items := make([]string, len(options))
	for i, o := range options {
		items[i] = string(o)
	}
	_, v, err := (&promptui.Select{Label: label, Items: items}).Run()
	return v, err
}

func askNumber(label string) (int, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		},
	}
	v, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}
