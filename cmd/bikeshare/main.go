// Package main provides the CLI entrypoint for bikeshare.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/bikeshare/internal/browse"
	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/console"
	"github.com/verte-zerg/bikeshare/internal/filter"
	"github.com/verte-zerg/bikeshare/internal/loader"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/pager"
	"github.com/verte-zerg/bikeshare/internal/session"
	"github.com/verte-zerg/bikeshare/internal/stats"
)

const defaultMonths = 6

var (
	dataDir  string
	months   int
	pageSize int

	queryCity  string
	queryMonth string
	queryDay   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding the city trip files")
	rootCmd.PersistentFlags().IntVar(&months, "months", defaultMonths, "number of selectable months, counted from January (1-12)")
	rootCmd.Flags().IntVar(&pageSize, "page-size", pager.DefaultPageSize, "raw records shown per page")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	cfg, files, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(os.Stdin, cmd.OutOrStdout())
	ctrl := session.New(c, loader.New(files), cfg)
	if err := ctrl.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List configured city trip files",
		Args:  cobra.NoArgs,
		RunE:  runCitiesCmd,
	}
}

func runCitiesCmd(cmd *cobra.Command, _ []string) error {
	_, files, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	l := loader.New(files)
	missing := 0
	for _, city := range model.Cities {
		path, ok := l.Path(city)
		if !ok {
			return fmt.Errorf("no trip file configured for %s", city.Title())
		}
		status := "ok"
		if _, err := os.Stat(path); err != nil {
			status = "missing"
			missing++
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s %s\n", city, status, path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if missing > 0 {
		logErrf("%d trip file(s) missing. Set [data] dir or [cities] in: %s\n", missing, config.DefaultConfigPath())
	}
	return nil
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&queryCity, "city", "", "city: chicago, new york or washington")
	cmd.Flags().StringVar(&queryMonth, "month", "", "month name, or all")
	cmd.Flags().StringVar(&queryDay, "day", "", "day abbreviation (Mon..Sun), or all")
	cmd.MarkFlagsMutuallyExclusive("month", "day")
	if err := cmd.MarkFlagRequired("city"); err != nil {
		// Flag is registered above.
		_ = err
	}
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print trip statistics for a city without prompting",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	addQueryFlags(cmd)
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	ds, err := loadQuery(cmd)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d trips (%s).\n", ds.Len(), ds.Filter); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if errs := stats.NewEngine(cmd.OutOrStdout()).Run(ds); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse raw trip records in a scrollable table",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	addQueryFlags(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	ds, err := loadQuery(cmd)
	if err != nil {
		return err
	}
	program := tea.NewProgram(browse.NewModel(ds), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browse TUI: %w", err)
	}
	return nil
}

func loadQuery(cmd *cobra.Command) (model.Dataset, error) {
	cfg, files, err := resolveConfig(cmd)
	if err != nil {
		return model.Dataset{}, err
	}
	f, err := filter.New(queryCity, queryMonth, queryDay, cfg.Months)
	if err != nil {
		return model.Dataset{}, err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ds, err := loader.New(files).Load(ctx, f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to load trips: %w", err)
	}
	return ds, nil
}

// resolveConfig merges the config file under any flags the user set.
func resolveConfig(cmd *cobra.Command) (model.Config, map[model.City]string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &dataDir, fileCfg.Data.Dir)
	applyIntConfig(cmd, "months", &months, fileCfg.Filter.Months)
	applyIntConfig(cmd, "page-size", &pageSize, fileCfg.Pager.PageSize)

	cfg := model.Config{
		DataDir:  dataDir,
		Months:   months,
		PageSize: pageSize,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, nil, err
	}
	files, err := fileCfg.CityFiles(cfg.DataDir)
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, files, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bikeshare configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# dir = %q                # Directory holding the city trip files

[cities]
# chicago = "chicago.csv"            # Relative paths resolve against [data] dir
# "new york" = "new_york_city.csv"
# washington = "washington.csv"

[filter]
# months = %d             # Selectable months, counted from January (1-12)

[pager]
# page-size = %d          # Raw records shown per page
`,
		config.DefaultDataDir(),
		defaultMonths,
		pager.DefaultPageSize,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("--data-dir must not be empty")
	}
	if cfg.Months < 1 || cfg.Months > len(model.MonthNames) {
		return fmt.Errorf("--months must be between 1 and %d", len(model.MonthNames))
	}
	if cfg.PageSize <= 0 {
		return fmt.Errorf("--page-size must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
