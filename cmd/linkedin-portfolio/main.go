package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"linkedin-portfolio-go/config"
	"linkedin-portfolio-go/internal/export"
	"linkedin-portfolio-go/internal/model"
	"linkedin-portfolio-go/internal/service"
)

const usageHint = "usage: linkedin-portfolio /path/to/Basic_LinkedInDataExport_XX-XX-XXXX"

var logger = zap.NewNop()

func main() {
	// 加载 .env 文件（如果存在）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 根命令：转换LinkedIn数据导出目录
func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		outputFile string
		format     string
		locale     string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "linkedin-portfolio <export-dir>",
		Short: "Convert a LinkedIn data export (GDPR) into the portfolio JSON document",
		Long: `Reads Profile.csv, Positions.csv, Education.csv, Skills.csv, Certifications.csv
and the optional Languages.csv / Projects.csv from a LinkedIn data export directory
and writes one portfolio document. Missing files are skipped.`,
		Args:          exportDirArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args[0], outputFile, format, locale)
		},
	}

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", cfg.OutputFile, "output file (overwritten)")
	rootCmd.Flags().StringVar(&format, "format", cfg.Format, "output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", cfg.Locale, "labels and month names: fr or en")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newScrapeCmd(cfg, &locale))
	return rootCmd
}

// exportDirArgs 恰好一个位置参数
func exportDirArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("missing export directory\n%s", usageHint)
	case 1:
		return nil
	default:
		return fmt.Errorf("expected one export directory, got %d arguments\n%s", len(args), usageHint)
	}
}

// newLogger 参照生产配置，控制台编码输出到stderr
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true

	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg.Level = atomic
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func runConvert(out io.Writer, exportDir, outputFile, formatName, localeCode string) error {
	info, err := os.Stat(exportDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("export directory does not exist: %s", exportDir)
	}

	loc, err := model.LookupLocale(localeCode)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	text := loc.Text
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "  "+text.Banner)
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintf(out, "\n"+text.SourceDir+"\n\n", exportDir)

	converter := service.NewConverter(exportDir, nil, loc, logger, out)

	if missing := converter.MissingRequired(); len(missing) > 0 {
		logger.Warn("Required export files missing", zap.Strings("files", missing))
		fmt.Fprintf(out, text.MissingFiles+"\n", strings.Join(missing, ", "))
		fmt.Fprintln(out, text.MissingFilesHint)
		fmt.Fprintln(out)
	}

	doc, err := converter.Convert()
	if err != nil {
		return err
	}

	if err := export.WriteFile(outputFile, doc, format); err != nil {
		return err
	}
	logger.Info("Portfolio written", zap.String("path", outputFile), zap.String("format", string(format)))
	fmt.Fprintf(out, "\n"+text.Saved+"\n", outputFile)

	printStats(out, text, doc.Stats())

	fmt.Fprintln(out, "\n"+text.Done)
	fmt.Fprintln(out, "\n"+text.NextSteps)
	fmt.Fprintf(out, "  1. "+text.NextReview+"\n", outputFile)
	fmt.Fprintln(out, "  2. "+text.NextImport)
	return nil
}

// printStats 标签按locale输出，数值列对齐
func printStats(out io.Writer, text model.Narration, s model.Stats) {
	fmt.Fprintln(out, "\n"+text.Summary)
	for _, line := range []struct {
		label string
		count int
	}{
		{text.Experience, s.Experience},
		{text.Education, s.Education},
		{text.Skills, s.Skills},
		{text.Languages, s.Languages},
		{text.Certifications, s.Certifications},
		{text.Projects, s.Projects},
	} {
		fmt.Fprintf(out, "  %-16s%d\n", line.label+":", line.count)
	}
}
