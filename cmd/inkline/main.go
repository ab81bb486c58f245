// Package main provides the inkline CLI entry point. inkline renders a
// small line-oriented markup language into ANSI-decorated terminal text,
// runs commands with badge-style status reporting, and offers an
// interactive rendering shell.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inkline/internal/execute"
	"inkline/internal/logger"
	"inkline/internal/render"
	"inkline/internal/term"
	"inkline/internal/version"
)

var (
	logLevel        string
	logFile         string
	testMode        bool
	margin          int
	themePath       string
	forcePlain      bool
	stdoutVerbosity string
	stderrVerbosity string
	passthrough     bool
)

// rootCmd renders markup lines from the given files, or stdin when no
// files are named.
var rootCmd = &cobra.Command{
	Use:   "inkline [file...]",
	Short: "inkline - terminal markup renderer",
	Long: `inkline renders a line-oriented markup language (@H1, @H2, @DIV,
@BLOCKQUOTE, status badges, @ENTRY/@EXIT blocks, and inline color spans)
into ANSI-decorated terminal text.`,
	RunE: runRender,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive rendering shell",
	Long:  `Read markup lines interactively and render each one as it is entered.`,
	RunE:  runShell,
}

var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Run a shell command and report its status as a badge",
	Long: `Run a shell command with captured output and report its status as a
right-justified badge. With --passthrough the command inherits the
terminal's stdio instead, for interactive children, and no badge or
replay is rendered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the markup language guide",
	RunE:  runGuide,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// A .env next to the binary may carry INKLINE_* settings; a missing
	// file is fine.
	_ = godotenv.Load()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	flags.StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	flags.IntVar(&margin, "margin", 80, "Column width for rules and right justification")
	flags.StringVar(&themePath, "theme", "", "YAML theme file overriding templates and colors")
	flags.BoolVar(&forcePlain, "plain", false, "Disable ANSI escape output")
	flags.StringVar(&stdoutVerbosity, "stdout-verbosity", "on-failure", "When to replay captured stdout (never|on-failure|always)")
	flags.StringVar(&stderrVerbosity, "stderr-verbosity", "on-failure", "When to replay captured stderr (never|on-failure|always)")

	for _, name := range []string{"log-level", "log-file", "test-mode", "margin", "theme", "plain", "stdout-verbosity", "stderr-verbosity"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("INKLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	runCmd.Flags().BoolVar(&passthrough, "passthrough", false, "Attach the command to the terminal's stdio instead of capturing")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file"), viper.GetBool("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds a render engine from the bound flags and the detected
// terminal capabilities.
func newEngine() (*render.Engine, error) {
	cfg := render.DefaultConfig()
	cfg.Margin = viper.GetInt("margin")

	var err error
	if cfg.StdoutVerbosity, err = render.ParseVerbosity(viper.GetString("stdout-verbosity")); err != nil {
		return nil, err
	}
	if cfg.StderrVerbosity, err = render.ParseVerbosity(viper.GetString("stderr-verbosity")); err != nil {
		return nil, err
	}

	opts := []render.Option{render.WithConfig(cfg)}

	if path := viper.GetString("theme"); path != "" {
		theme, err := render.LoadTheme(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithTheme(theme))
	}

	if viper.GetBool("plain") || term.DetectFormat(os.Stdout) == term.FormatPlain {
		opts = append(opts, render.PlainText())
	}

	return render.New(opts...), nil
}

func runRender(_ *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return renderFrom(engine, os.Stdin, "stdin")
	}
	for _, path := range args {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		err = renderFrom(engine, file, path)
		_ = file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func renderFrom(engine *render.Engine, r *os.File, name string) error {
	logger.Debug("Rendering markup", "source", name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		engine.Render(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

func runShell(_ *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	rl, err := readline.New("inkline> ")
	if err != nil {
		return fmt.Errorf("failed to initialize line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Printf("inkline v%s - type markup lines, 'exit' to quit\n", version.GetVersion())

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		engine.Render(line)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	command := strings.Join(args, " ")
	runner := execute.NewRunner(engine)

	if passthrough {
		code, err := runner.System(cmd.Context(), command)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	}

	result, err := runner.Run(cmd.Context(), command)
	if err != nil {
		return err
	}
	runner.Report(command, result)

	if result.Failed() {
		os.Exit(result.ExitCode)
	}
	return nil
}

func runGuide(_ *cobra.Command, _ []string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(viper.GetInt("margin")),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(guideMarkdown)
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}
	fmt.Print(out)
	return nil
}
