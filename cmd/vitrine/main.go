package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/vitrine/internal/browse"
	"github.com/mmcdole/vitrine/internal/catalog/artic"
	"github.com/mmcdole/vitrine/internal/config"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/observability"
	"github.com/mmcdole/vitrine/internal/report"
	"github.com/mmcdole/vitrine/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCmd(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command-line flags
type options struct {
	configPath  string
	page        int
	pageSize    int
	plain       bool
	selectFirst int
	metricsAddr string
}

func newRootCmd(version string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "Browse the artwork catalog page by page",
		Long:          "Vitrine pages through a public artwork catalog and keeps a selection of records across pages.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/vitrine/config.yaml)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page to open")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", browse.DefaultPageSize, "records per page")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the page as a table instead of starting the UI")
	cmd.Flags().IntVar(&opts.selectFirst, "select", 0, "select the first N records (plain mode)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("page-size") {
		cfg.Browse.PageSize = opts.pageSize
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = config.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting vitrine", "version", cmd.Version, "server", cfg.Server.URL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	client := artic.NewClient(artic.ClientConfig{
		BaseURL:   cfg.Server.URL,
		PageSize:  cfg.Browse.PageSize,
		Timeout:   cfg.Server.Timeout,
		UserAgent: cfg.Server.UserAgent,
		Metrics:   artic.NewMetrics(reg),
	}, logger)

	if cfg.Metrics.Addr != "" {
		srv := observability.NewServer(cfg.Metrics.Addr, reg, logger)
		addr, err := srv.Start()
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		logger.Info("metrics server listening", "addr", addr.String())
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	if opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return browsePlain(cmd.Context(), client, cmd.OutOrStdout(), plainRequest{
			pageSize:    cfg.Browse.PageSize,
			page:        opts.page,
			selectFirst: opts.selectFirst,
			logger:      logger,
		})
	}

	model := tui.NewModel(client, tui.Options{
		PageSize:      cfg.Browse.PageSize,
		StartPage:     opts.page,
		ShowInspector: cfg.UI.ShowInspector,
		FetchTimeout:  cfg.Server.Timeout,
		Logger:        logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// plainRequest describes a one-shot, non-interactive browse
type plainRequest struct {
	pageSize    int
	page        int
	selectFirst int
	logger      *slog.Logger
}

// browsePlain drives a session the way the UI would and prints the requested
// page. With a target, pages from the first one are visited until the target
// is met or the requested page is reached, so the checkbox column shows the
// same selection the UI would have accumulated.
func browsePlain(ctx context.Context, repo domain.PageRepository, w io.Writer, req plainRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}

	session := browse.NewSession(req.pageSize, req.logger)
	target := max(req.page, 1)

	if req.selectFirst > 0 {
		session.TargetCountChanged(fmt.Sprint(req.selectFirst))
		for pg := 1; pg < target && session.SelectedCount() < session.Target(); pg++ {
			if err := loadPage(ctx, repo, session, pg); err != nil {
				return err
			}
			if len(session.Records()) == 0 {
				break
			}
		}
	}

	if err := loadPage(ctx, repo, session, target); err != nil {
		return err
	}
	return report.RenderPage(w, session)
}

// loadPage moves the session to a page and fetches it
func loadPage(ctx context.Context, repo domain.PageRepository, s *browse.Session, page int) error {
	requested, ok := s.PageChanged(s.Pagination().OffsetForPage(page))
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPage, page)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, tui.DefaultFetchTimeout)
	defer cancel()

	result, err := repo.Fetch(fetchCtx, requested)
	if err != nil {
		s.ApplyError(requested, err)
		return fmt.Errorf("fetching page %d: %w", requested, err)
	}
	s.ApplyPage(requested, result)

	if result != nil && requested > 1 && len(result.Records) == 0 && result.Total > 0 {
		return fmt.Errorf("%w: page %d is past the end", domain.ErrInvalidPage, requested)
	}
	return nil
}
