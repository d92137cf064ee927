package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume and cover letter",
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("profile", "", "resume source: file, URL or - for stdin")
	generateCmd.Flags().String("job", "", "job posting source: file, URL or - for stdin")
	generateCmd.Flags().String("tone", "", "writing tone: concise, neutral, storytelling or technical")
	generateCmd.Flags().String("length", "", "target length: 1-page, 2-page or unrestricted")
	generateCmd.Flags().StringSlice("sections", nil, "resume sections to include")
	generateCmd.Flags().Bool("no-cover-letter", false, "skip the cover letter")
	generateCmd.Flags().Bool("no-comments", false, "do not annotate matched keywords")

	generateCmd.MarkFlagRequired("profile")
	generateCmd.MarkFlagRequired("job")
}

func generate(cmd *cobra.Command) {
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

	if err := sess.UpdateSettings(func(s *career.GenerationSettings) {
		applySettingFlags(cmd.Flags(), s)
	}); err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}

	profileSrc, _ := cmd.Flags().GetString("profile")
	jobSrc, _ := cmd.Flags().GetString("job")
	if profileSrc == "-" && jobSrc == "-" {
		logger.Fatal("only one of --profile and --job may read stdin")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := app.loader.Load(gctx, profileSrc)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		_, err = sess.ParseProfile(gctx, doc.Text)
		return err
	})
	g.Go(func() error {
		doc, err := app.loader.Load(gctx, jobSrc)
		if err != nil {
			return fmt.Errorf("job: %w", err)
		}
		_, err = sess.ParseJobFrom(gctx, doc.Source, doc.Text)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("parsing inputs", zap.Error(err))
	}

	resume, letter, err := sess.Generate(ctx)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}

	paths, err := saveArtifacts(sess.Job(), resume, letter, outputDir())
	if err != nil {
		logger.Fatal("saving documents", zap.Error(err))
	}

	for _, p := range paths {
		logger.Info("document saved", zap.String("path", p))
	}
}

// applySettingFlags copies explicitly set flags onto the settings.
func applySettingFlags(flags *pflag.FlagSet, s *career.GenerationSettings) {
	if flags.Changed("tone") {
		v, _ := flags.GetString("tone")
		s.Tone = career.Tone(v)
	}
	if flags.Changed("length") {
		v, _ := flags.GetString("length")
		s.TargetLength = career.TargetLength(v)
	}
	if flags.Changed("sections") {
		s.IncludeSections, _ = flags.GetStringSlice("sections")
	}
	if v, _ := flags.GetBool("no-cover-letter"); v {
		s.GenerateCoverLetter = false
	}
	if v, _ := flags.GetBool("no-comments"); v {
		s.ShowKeywordMatchComments = false
	}
}

func saveArtifacts(job *career.JobDescription, resume *career.TailoredResume, letter *career.TailoredCoverLetter, dir string) ([]string, error) {
	var artifacts []export.Artifact

	a, err := export.ResumeArtifact(resume, job)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, a)

	if letter != nil {
		a, err := export.CoverLetterArtifact(letter, job)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		p, err := export.Write(dir, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
