// Package cli implements the macbench command line: global flags,
// configuration and logger initialisation, the in-process catalog and
// advisor services, and the text/json/yaml/table renderers shared by every
// subcommand.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/MacBench/internal/application/advisor"
	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/i18n"
	"github.com/turtacn/MacBench/internal/infrastructure/dataset"
	"github.com/turtacn/MacBench/internal/infrastructure/llm"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Language     string
	Timeout      time.Duration
}

// Services are the use cases the subcommands drive.
type Services struct {
	Catalog catalog.Service
	Advisor advisor.Service
}

// ServiceFactory builds Services from the loaded configuration.
type ServiceFactory func(cfg *config.Config, logger logging.Logger) (*Services, error)

// CLIContext carries initialised dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Services     *Services
	Printer      *i18n.Printer
	OutputFormat string
	Timeout      time.Duration
}

// NewRootCommand creates the root command with every subcommand attached.
// A nil factory means DefaultServiceFactory.
func NewRootCommand(factory ServiceFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultServiceFactory
	}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "macbench",
		Short: "MacBench: Apple silicon benchmark catalog and buying advisor",
		Long: "MacBench ranks Apple machines by Geekbench and Metal scores under a usage\n" +
			"scenario, compares two machines side by side, estimates trade-in and\n" +
			"refurbished prices and answers buying questions over the catalog.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts, factory)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./macbench.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", logging.LevelWarn, "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", OutputText, "output format (text, json, yaml, table)")
	pf.StringVarP(&opts.Language, "lang", "l", "", "output language (en, zh, es); default from config")
	pf.DurationVar(&opts.Timeout, "timeout", 30*time.Second, "global operation timeout")

	cmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newCompareCmd(),
		newEstimateCmd(),
		newScenariosCmd(),
		newAdviseCmd(),
		newLinkCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions, factory ServiceFactory) error {
	switch strings.ToLower(opts.OutputFormat) {
	case OutputText, OutputJSON, OutputYAML, OutputTable:
	default:
		return errors.InvalidParam("unknown output format").WithDetail(opts.OutputFormat)
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	services, err := factory(cfg, logger)
	if err != nil {
		return fmt.Errorf("service initialization failed: %w", err)
	}

	lang := i18n.Match(cfg.Catalog.DefaultLanguage)
	if opts.Language != "" {
		lang = i18n.Match(opts.Language)
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Services:     services,
		Printer:      i18n.NewPrinter(lang),
		OutputFormat: strings.ToLower(opts.OutputFormat),
		Timeout:      opts.Timeout,
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// initConfig loads configuration with priority: flag path > search paths >
// environment only.
func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	searchPaths := []string{"./macbench.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".macbench", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/macbench/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return config.Load(p)
		}
	}
	return config.LoadFromEnv()
}

// initLogger creates a console logger on stderr so stdout stays parseable.
func initLogger(opts *RootOptions) (logging.Logger, error) {
	return logging.NewLogger(logging.LogConfig{
		Level:            opts.LogLevel,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// DefaultServiceFactory loads the dataset named by the config (or the
// embedded one) and builds the advisor with a chat backend when one is
// configured.  The CLI runs without a cache.
func DefaultServiceFactory(cfg *config.Config, logger logging.Logger) (*Services, error) {
	records, err := dataset.LoadWithLogger(cfg.Catalog.DatasetPath, logger)
	if err != nil {
		return nil, err
	}
	cat := catalog.NewService(dataset.NewRepository(records), logger, nil, &catalog.ServiceConfig{
		CurrentYear: cfg.Catalog.CurrentYear,
	})

	var model advisor.ChatModel
	if !cfg.Advisor.Offline {
		client, err := llm.New(cfg.Advisor, nil)
		switch {
		case err == nil:
			model = client
		case errors.IsCode(err, errors.ErrCodeAdvisorNotConfigured):
			logger.Debug("advisor backend not configured, using local answers", logging.Err(err))
		default:
			return nil, err
		}
	}
	adv := advisor.NewService(model, nil, logger, nil, &advisor.ServiceConfig{
		Timeout: cfg.Advisor.Timeout,
		Offline: cfg.Advisor.Offline,
	})
	return &Services{Catalog: cat, Advisor: adv}, nil
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "CLIContext not found in command context")
	}
	return cliCtx, nil
}

// operationContext bounds one command by the global timeout.
func (c *CLIContext) operationContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand(nil)
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// humanRenderer writes the text or table rendition of a result.
type humanRenderer func(w io.Writer, table bool) error

// PrintResult outputs data in the format selected by --output.  json and
// yaml serialise data; text and table call human.
func PrintResult(cmd *cobra.Command, data interface{}, human humanRenderer) error {
	format := OutputJSON
	if cliCtx, err := GetCLIContext(cmd); err == nil {
		format = cliCtx.OutputFormat
	}

	out := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return printJSON(out, data)
	case OutputYAML:
		return printYAML(out, data)
	default:
		if human == nil {
			return printJSON(out, data)
		}
		return human(out, format == OutputTable)
	}
}

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printYAML goes through JSON first so field names match the json output
// and embedded structs are flattened the same way.
func printYAML(w io.Writer, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode result")
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode result")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode result")
	}
	return enc.Close()
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

// FormatTable renders headers and rows as an aligned table.  Widths are
// measured in terminal cells so CJK headers line up.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i := range headers {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			if i == len(headers)-1 {
				sb.WriteString(val)
			} else {
				sb.WriteString(runewidth.FillRight(val, colWidths[i]))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sep := make([]string, len(headers))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// formatPairs renders label/value lines with the labels padded to one
// width.
func formatPairs(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p[0]); w > width {
			width = w
		}
	}
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(runewidth.FillRight(p[0]+":", width+1))
		sb.WriteString("  ")
		sb.WriteString(p[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatUSD(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

func formatInt(v int) string {
	return humanize.Comma(int64(v))
}

//Personal.AI order the ending
