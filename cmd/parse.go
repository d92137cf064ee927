package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-tailor/internal/career"
	"github.com/spigell/resume-tailor/internal/logger"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a structured record from a resume or a job posting",
}

var parseProfileCmd = &cobra.Command{
	Use:   "profile <file|url|->",
	Short: "Extract a profile from a resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, career.RecordProfile, args[0])
	},
}

var parseJobCmd = &cobra.Command{
	Use:   "job <file|url|->",
	Short: "Extract a job description from a posting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, career.RecordJob, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.AddCommand(parseProfileCmd, parseJobCmd)

	parseCmd.PersistentFlags().Bool("raw", false, "print only the JSON record")
}

func parse(cmd *cobra.Command, kind career.RecordKind, src string) {
	ctx := context.Background()
	l := newLogger()
	log := logger.ForAction(l, "parse-"+string(kind))

	app, err := newApplication(ctx, l)
	if err != nil {
		log.Fatal("initializing", zap.Error(err))
	}

	doc, err := app.loader.Load(ctx, src)
	if err != nil {
		log.Fatal("loading document", zap.Error(err))
	}

	var record career.Record
	switch kind {
	case career.RecordProfile:
		record, err = app.extractor.Profile(ctx, doc.Text)
	case career.RecordJob:
		var job *career.JobDescription
		if job, err = app.extractor.Job(ctx, doc.Text); err == nil {
			job.Source = doc.Source
		}
		record = job
	}
	if err != nil {
		log.Fatal("extraction failed", zap.Error(err))
	}

	raw, _ := cmd.Flags().GetBool("raw")
	if err := printRecord(record, raw); err != nil {
		log.Fatal("printing record", zap.Error(err))
	}
}
