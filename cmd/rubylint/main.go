package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/rubylint/rubylint/internal/config"
	"github.com/rubylint/rubylint/internal/discovery"
	"github.com/rubylint/rubylint/internal/engine"
	fixpkg "github.com/rubylint/rubylint/internal/fix"
	"github.com/rubylint/rubylint/internal/log"
	"github.com/rubylint/rubylint/internal/output"
	"github.com/rubylint/rubylint/internal/rule"
	"github.com/rubylint/rubylint/internal/rules"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: rubylint <command> [flags] [files...]

Commands:
  check     Lint Ruby files (files, directories, or glob patterns)
  fix       Auto-fix lint issues in place
  rules     List the built-in rules
  init      Generate a default .rubylint.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'rubylint <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "check":
		return runCheck(os.Args[2:])
	case "fix":
		return runFix(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "rubylint: unknown command %q\n\n%s", os.Args[1], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("rubylint %s\n", version)
}

// checkFlags are the flags shared by check and fix.
type checkFlags struct {
	configPath string
	format     string
	only       string
	except     string
	noColor    bool
	quiet      bool
	verbose    bool
	jobs       int
}

func (c *checkFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&c.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&c.format, "format", "f", "text", "Output format: text, json")
	fs.StringVar(&c.only, "only", "", "Run only these rules (comma-separated ids)")
	fs.StringVar(&c.except, "except", "", "Never run these rules (comma-separated ids)")
	fs.BoolVar(&c.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&c.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&c.verbose, "verbose", false, "Log progress to stderr")
	fs.IntVarP(&c.jobs, "jobs", "j", 0, "Worker count (0 = number of CPUs)")
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var cf checkFlags
	cf.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rubylint check [flags] [files...]\n\n"+
			"Lint Ruby files for style and correctness issues.\n\n"+
			"Files can be paths, directories (walked recursively for Ruby file shapes),\n"+
			"or glob patterns. With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(cf.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rubylint: %v\n", err)
		return 2
	}
	reg := buildRegistry(cfg, cf.only, cf.except)
	logger := &log.Logger{Enabled: cf.verbose, W: os.Stderr}
	if cfg.Global.TargetVersion != "" {
		logger.Printf("target version %s", cfg.Global.TargetVersion)
	}

	runner := &engine.Runner{Registry: reg, Config: cfg, Jobs: cf.jobs, Log: logger}

	if fs.NArg() == 0 {
		if !isStdinPipe() {
			return 0
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rubylint: reading stdin: %v\n", err)
			return 2
		}
		return render(runner.RunSource("<stdin>", source), cf)
	}

	files, err := discovery.Resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "rubylint: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	return render(runner.Run(files), cf)
}

// runFix implements the "fix" subcommand.
func runFix(args []string) int {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	var cf checkFlags
	cf.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rubylint fix [flags] [files...]\n\n"+
			"Auto-fix lint issues in Ruby files.\n\n"+
			"Stdin is not supported (files must be writable).\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		if isStdinPipe() {
			fmt.Fprintf(os.Stderr, "rubylint: cannot fix stdin in place\n")
			return 2
		}
		return 0
	}

	cfg, err := loadConfig(cf.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rubylint: %v\n", err)
		return 2
	}
	reg := buildRegistry(cfg, cf.only, cf.except)

	files, err := discovery.Resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "rubylint: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	fixer := &fixpkg.Fixer{Registry: reg, Config: cfg, Jobs: cf.jobs}
	res := fixer.Fix(files)

	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "rubylint: %v\n", e)
	}
	if !cf.quiet {
		for _, path := range res.Modified {
			fmt.Fprintf(os.Stderr, "rubylint: fixed %s\n", path)
		}
	}
	if len(res.Errors) > 0 && res.Report.DiagnosticCount == 0 {
		return 2
	}
	return render(res.Report, cf)
}

// runRules implements the "rules" subcommand: list the built-in rule set.
func runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	for _, rl := range rules.Builtin() {
		fmt.Printf("%-28s %s  %s\n", rl.ID(), rl.DefaultSeverity().Code(), rl.Description())
	}
	return 0
}

// runInit implements the "init" subcommand: generate .rubylint.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rubylint init\n\n"+
			"Generate a default .rubylint.yml config file in the current directory.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "rubylint: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "rubylint: %s already exists\n", config.FileName)
		return 2
	}

	var b strings.Builder
	b.WriteString("AllRules:\n  Exclude: []\n  TargetVersion: \"\"\n")
	for _, rl := range rules.Builtin() {
		fmt.Fprintf(&b, "%s:\n  Enabled: true\n  Severity: %s\n", rl.ID(), rl.DefaultSeverity())
	}

	if err := os.WriteFile(config.FileName, []byte(b.String()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "rubylint: writing %s: %v\n", config.FileName, err)
		return 2
	}
	fmt.Fprintf(os.Stderr, "rubylint: created %s\n", config.FileName)
	return 0
}

// render writes the report and maps it to the exit contract: 0 for a clean
// run, 1 when at least one diagnostic was found.
func render(report *engine.Report, cf checkFlags) int {
	if !cf.quiet && report.DiagnosticCount > 0 {
		var formatter output.Formatter
		switch cf.format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !cf.noColor}
		}
		if err := formatter.Format(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "rubylint: error writing output: %v\n", err)
			return 2
		}
	}
	if report.DiagnosticCount > 0 {
		return 1
	}
	return 0
}

// buildRegistry assembles the rule registry and applies the enablement
// sources in precedence order: config first, then the allow-list, then the
// deny-list.
func buildRegistry(cfg *config.Config, only, except string) *rule.Registry {
	reg := rule.NewRegistry(rules.Builtin())
	cfg.Apply(reg)
	reg.ApplyFilters(splitList(only), splitList(except))
	return reg
}

// splitList splits a comma-separated id list, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadConfig loads configuration from the given path, or discovers one
// from the working directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Default(), nil
	}
	return config.Load(discovered)
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
