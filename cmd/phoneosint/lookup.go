package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/phoneosint/internal/config"
	"github.com/nao1215/phoneosint/internal/enrich"
	applog "github.com/nao1215/phoneosint/internal/log"
	"github.com/nao1215/phoneosint/internal/model"
	"github.com/nao1215/phoneosint/internal/phone"
	"github.com/nao1215/phoneosint/internal/pipeline"
	"github.com/nao1215/phoneosint/internal/report"
	"github.com/nao1215/phoneosint/internal/tor"
)

const (
	promptCountryCode = "Enter country code (e.g. +91 or 91): "
	promptNumber      = "Enter phone number (without country code): "
	footer            = "[+] Scan complete. Stay ethical!"
)

// errNoInput is returned when stdin ends before a value was entered.
var errNoInput = errors.New("no input provided")

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [country-code] [number]",
		Short: "Look up a phone number and print a report",
		Long: `Lookup parses a phone number, resolves its metadata from the offline
numbering-plan database, optionally validates it with NumVerify, and prints
a report with search links.

Missing arguments are prompted for on stdin. A leading "+" on the country
code is ignored.

Examples:
  # Look up an Indian mobile number
  phoneosint lookup 91 9876543210

  # Prompt for the country code and number
  phoneosint lookup

  # Plain text report written to a file
  phoneosint lookup --text -o reports/number.txt +1 5555555555

  # Send the NumVerify request through an external Tor proxy
  phoneosint lookup --tor -e 127.0.0.1:9050 44 2079460000`,
		Args: cobra.MaximumNArgs(2),
		RunE: runLookupCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .phoneosint in current or home directory)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the NumVerify request")
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Language for country and carrier names (BCP 47 tag)")
	cmd.Flags().String("numverify-url", config.DefaultNumVerifyURL,
		"NumVerify endpoint")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --text)")
	cmd.Flags().Bool("text", false,
		"Output plain text report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("escape-links", false,
		"Percent-encode the number in search links")

	cmd.Flags().Bool("tor", false,
		"Route the NumVerify request through Tor (embedded daemon unless --tor-proxy is set)")
	cmd.Flags().StringP("tor-proxy", "e", "",
		"Use external Tor SOCKS5 proxy at specified address (e.g., 127.0.0.1:9050)")
	cmd.Flags().DurationP("tor-timeout", "T", config.DefaultTorStartupTimeout,
		"Timeout for embedded Tor startup")

	return cmd
}

// runLookupCmd executes the lookup command.
func runLookupCmd(cmd *cobra.Command, args []string) error {
	getenv, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd, getenv)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	input, err := readInput(cmd.InOrStdin(), cmd.ErrOrStderr(), args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runLookup(ctx, cfg, input, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file, the
// environment and the command flags, in increasing precedence. Flags only
// override when set explicitly.
func buildConfig(cmd *cobra.Command, getenv config.Getenv) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; the default locations are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.ApplyFile(file); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.ApplyEnv(getenv)

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("lang") {
		if cfg.Language, err = flags.GetString("lang"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("numverify-url") {
		if cfg.NumVerifyURL, err = flags.GetString("numverify-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("tor") {
		if cfg.UseTor, err = flags.GetBool("tor"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("tor-proxy") {
		if cfg.TorProxyAddress, err = flags.GetString("tor-proxy"); err != nil {
			return nil, err
		}
		// An explicit proxy implies Tor routing.
		cfg.UseTor = cfg.UseTor || cfg.TorProxyAddress != ""
	}

	if cfg.TorStartupTimeout, err = flags.GetDuration("tor-timeout"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.TextReport, err = flags.GetBool("text"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.EscapeLinks, err = flags.GetBool("escape-links"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// readInput takes the country code and number from args, prompting on
// prompt and reading from in for any that are missing.
func readInput(in io.Reader, prompt io.Writer, args []string) (model.RawInput, error) {
	reader := bufio.NewReader(in)

	countryCode, err := argOrPrompt(reader, prompt, args, 0, promptCountryCode)
	if err != nil {
		return model.RawInput{}, err
	}
	number, err := argOrPrompt(reader, prompt, args, 1, promptNumber)
	if err != nil {
		return model.RawInput{}, err
	}

	return model.RawInput{
		CountryCode: normalizeCountryCode(countryCode),
		LocalNumber: strings.TrimSpace(number),
	}, nil
}

// argOrPrompt returns args[i] when present, otherwise one line read after
// writing the prompt.
func argOrPrompt(reader *bufio.Reader, prompt io.Writer, args []string, i int, text string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}

	fmt.Fprint(prompt, text)
	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", errNoInput
		}
	}
	return line, nil
}

// normalizeCountryCode trims whitespace and leading "+" signs.
func normalizeCountryCode(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "+"))
}

// runLookup runs the pipeline for input and writes the report.
func runLookup(ctx context.Context, cfg *config.Config, input model.RawInput, stdout, stderr io.Writer, logger *slog.Logger) error {
	httpClient := &http.Client{}

	if cfg.UseTor {
		if cfg.NumVerifyAPIKey == "" {
			logger.Warn("--tor has no effect without a NumVerify API key")
		} else {
			session, err := tor.Open(ctx, tor.SessionConfig{
				ProxyAddress:   cfg.TorProxyAddress,
				StartupTimeout: cfg.TorStartupTimeout,
				Timeout:        cfg.Timeout,
				Logger:         logger,
			})
			if err != nil {
				return fmt.Errorf("failed to connect to Tor: %w", err)
			}
			defer func() {
				if err := session.Close(); err != nil {
					logger.Error("failed to stop embedded Tor", "error", err)
				}
			}()
			httpClient = session.HTTPClient()
		}
	}

	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithResolver(phone.NewResolver(cfg.LanguageBase())),
		pipeline.WithEnricher(enrich.NewNumVerifyClient(cfg.NumVerifyAPIKey,
			enrich.WithBaseURL(cfg.NumVerifyURL),
			enrich.WithHTTPClient(httpClient),
			enrich.WithTimeout(cfg.Timeout),
			enrich.WithLogger(logger),
		)),
		pipeline.WithIdentityLookup(enrich.NewIdentityLookup(cfg.AadhaarAPIKey)),
		pipeline.WithEscapedLinks(cfg.EscapeLinks),
	)

	rep, err := p.Execute(ctx, input)
	if err != nil {
		return err
	}

	if err := outputReport(cfg, rep, stdout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(stderr, footer)
	return nil
}

// reportFormat selects the writer format from the configuration.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.TextReport:
		return report.FormatText
	default:
		return report.FormatMarkdown
	}
}

// outputReport writes rep to cfg.ReportFile, or to stdout when unset.
func outputReport(cfg *config.Config, rep *model.Report, stdout io.Writer) error {
	if cfg.ReportFile == "" {
		return writeReport(stdout, cfg, rep)
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports describe a person's number; keep them owner-readable only.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeAndClose(f, cfg, rep)
}

// writeAndClose writes rep to out and closes it. A close error is returned
// when the write itself succeeded.
func writeAndClose(out io.WriteCloser, cfg *config.Config, rep *model.Report) (err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return writeReport(out, cfg, rep)
}

// writeReport renders rep to out in the configured format.
func writeReport(out io.Writer, cfg *config.Config, rep *model.Report) error {
	_, err := report.NewWriter(out, reportFormat(cfg), getVersion()).Write(rep)
	return err
}
