package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linkedin-portfolio-go/config"
	"linkedin-portfolio-go/internal/cache"
	"linkedin-portfolio-go/internal/export"
	"linkedin-portfolio-go/internal/fetcher"
	"linkedin-portfolio-go/internal/model"
	"linkedin-portfolio-go/internal/service"
)

// newScrapeCmd 公开主页抓取（尽力而为，LinkedIn通常会拦截）
func newScrapeCmd(cfg *config.Config, locale *string) *cobra.Command {
	var (
		outputFile string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "scrape <profile-url>",
		Short: "Best-effort extraction of a public LinkedIn profile page",
		Long: `Fetches a public LinkedIn profile page and extracts name, headline, location
and summary. LinkedIn renders most content with JavaScript and usually blocks
automated requests, so expect partial data or failure. The data export is the
reliable path. Use only on your own public profile.

Results are cached by profile when DATABASE_URL (PostgreSQL) or CACHE_DIR is
set; without either, every run fetches the page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := model.LookupLocale(*locale)
			if err != nil {
				return err
			}

			var c cache.Cache
			if !noCache {
				var closeCache func()
				c, closeCache = newScrapeCache(cmd.Context(), cfg)
				defer closeCache()
			}

			client := fetcher.NewLinkedInClient(cfg.ScrapeUserAgent, cfg.ScrapeAcceptLanguage, cfg.ScrapeTimeout)
			svc := service.NewScraperService(client, c, cfg.CacheTTL, loc, logger)
			return runScrape(cmd.Context(), cmd.OutOrStdout(), svc, args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", cfg.ScrapeOutputFile, "output JSON file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always fetch the page")
	return cmd
}

func runScrape(ctx context.Context, out io.Writer, svc *service.ScraperService, profileURL, outputFile string) error {
	fmt.Fprintf(out, "Extracting from: %s\n", profileURL)
	fmt.Fprintln(out, "LinkedIn usually blocks this kind of request; the data export is the reliable path.")

	doc, err := svc.Scrape(ctx, profileURL)
	if err != nil {
		if errors.Is(err, fetcher.ErrBlocked) {
			fmt.Fprintln(out, "\nLinkedIn blocked the request (status 999).")
		}
		fmt.Fprintln(out, "\nUse the LinkedIn data export instead:")
		fmt.Fprintln(out, "  1. LinkedIn > Settings > Data privacy > Get a copy of your data")
		fmt.Fprintln(out, "  2. Download the archive")
		fmt.Fprintln(out, "  3. Run: linkedin-portfolio /path/to/export")
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := export.WriteFile(outputFile, doc, export.FormatJSON); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nPartial data saved to: %s\n", outputFile)
	fmt.Fprintf(out, "  Name:     %s\n", doc.Profile.Name)
	fmt.Fprintf(out, "  Title:    %s\n", doc.Profile.Title)
	fmt.Fprintf(out, "  Location: %s\n", doc.Profile.Location)
	fmt.Fprintln(out, "\nReview the data, complete it by hand and merge it into the portfolio.")
	return nil
}

// newScrapeCache 优先使用PostgreSQL，其次文件缓存；都未配置时不缓存（单次进程内存缓存不会命中）
func newScrapeCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.DatabaseURL != "" {
		pg, err := cache.NewPostgresCache(ctx, cfg.DatabaseURL, service.ScrapeCacheSource)
		if err == nil {
			logger.Debug("Using PostgreSQL cache")
			return pg, func() { pg.Close() }
		}
		logger.Warn("Failed to connect to PostgreSQL, falling back", zap.Error(err))
	}

	if cfg.CacheDir != "" {
		fc, err := cache.NewFileCache(cfg.CacheDir, service.ScrapeCacheSource)
		if err == nil {
			logger.Debug("Using file cache", zap.String("dir", cfg.CacheDir))
			return fc, func() {}
		}
		logger.Warn("Failed to open file cache", zap.Error(err))
	}

	logger.Debug("No persistent cache configured, caching disabled")
	return nil, func() {}
}
