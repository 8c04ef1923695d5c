package main

import (
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	ngattrhint "github.com/zjhiphop/ng-attr-hint"
	"github.com/zjhiphop/ng-attr-hint/internal/config"
	"github.com/zjhiphop/ng-attr-hint/internal/discovery"
	"github.com/zjhiphop/ng-attr-hint/internal/engine"
	"github.com/zjhiphop/ng-attr-hint/internal/lint"
	"github.com/zjhiphop/ng-attr-hint/internal/log"
	"github.com/zjhiphop/ng-attr-hint/internal/output"
	"github.com/zjhiphop/ng-attr-hint/internal/rule"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: ng-attr-hint <command> [flags] [files...]

Commands:
  check     Lint Angular attributes in HTML files (default with file arguments)
  help      Show help for rules and topics
  init      Generate a default .ng-attr-hint.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'ng-attr-hint <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
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
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "ng-attr-hint: unknown command %q\n\n%s", os.Args[1], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("ng-attr-hint %s\n", version)
}

// checkFlags holds the parsed flags of the check subcommand.
type checkFlags struct {
	configPath  string
	format      string
	encoding    string
	ignoreAttrs []string
	noColor     bool
	quiet       bool
	verbose     bool
	noGitignore bool
}

// runCheck implements the "check" subcommand: lint files.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var cf checkFlags

	fs.StringVarP(&cf.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&cf.format, "format", "f", "text", "Output format: text, json")
	fs.StringVarP(&cf.encoding, "encoding", "e", "", "Input text encoding (IANA name, default utf-8)")
	fs.StringArrayVar(&cf.ignoreAttrs, "ignore-attr", nil, "Attribute name exempted from the empty-attribute rule (repeatable)")
	fs.BoolVar(&cf.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&cf.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&cf.verbose, "verbose", "v", false, "Log pipeline progress to stderr")
	fs.BoolVar(&cf.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ng-attr-hint check [flags] [files...]\n\n"+
			"Lint Angular template-binding attributes in HTML files.\n\n"+
			"Files can be paths, directories (walked recursively for *.html), or glob\n"+
			"patterns. With no file arguments, config 'files' patterns are used when\n"+
			"present, otherwise stdin is read if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(cf.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}

	fileArgs := fs.Args()

	// No file args: fall back to config discovery patterns, then stdin.
	if len(fileArgs) == 0 {
		if len(cfg.Files) > 0 {
			files, err := discovery.Discover(discovery.Options{
				Patterns:     cfg.Files,
				UseGitignore: !cf.noGitignore,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
				return 2
			}
			return checkFiles(files, cfg, cf)
		}
		if !isStdinPipe() {
			return 0
		}
		return checkStdin(cfg, cf)
	}

	useGitignore := !cf.noGitignore
	files, err := lint.ResolveFilesWithOpts(fileArgs, lint.ResolveOpts{UseGitignore: &useGitignore})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}
	return checkFiles(files, cfg, cf)
}

// checkFiles lints the given file paths and returns the appropriate exit
// code: 0 clean, 1 findings, 2 system error.
func checkFiles(files []string, cfg *config.Config, cf checkFlags) int {
	if len(files) == 0 {
		return 0
	}

	runner, err := newRunner(files, cfg, cf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}

	diags, err := runner.Run(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}

	return report(diags, cf)
}

// checkStdin lints piped stdin as a single pseudo-file.
func checkStdin(cfg *config.Config, cf checkFlags) int {
	runner, err := newRunner(nil, cfg, cf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}

	diags, err := runner.LintReader("<stdin>", os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}

	return report(diags, cf)
}

// newRunner builds the engine runner from config and flags. Flag values
// override config values; encoding validation happens here, before any
// file is opened.
func newRunner(files []string, cfg *config.Config, cf checkFlags) (*engine.Runner, error) {
	encoding := cfg.Encoding
	if cf.encoding != "" {
		encoding = cf.encoding
	}
	if err := engine.ValidEncoding(encoding); err != nil {
		return nil, err
	}

	settings := &lint.Settings{
		Files:            files,
		IgnoreAttributes: append(append([]string(nil), cfg.IgnoreAttributes...), cf.ignoreAttrs...),
		FileEncoding:     encoding,
	}

	return &engine.Runner{
		Config:   cfg,
		Rules:    rule.All(),
		Settings: settings,
		Log:      log.New(cf.verbose, os.Stderr),
	}, nil
}

// report formats diagnostics and picks the exit code.
func report(diags []lint.Diagnostic, cf checkFlags) int {
	if !cf.quiet && len(diags) > 0 {
		var formatter output.Formatter
		switch cf.format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !cf.noColor}
		}

		if err := formatter.Format(os.Stderr, diags); err != nil {
			fmt.Fprintf(os.Stderr, "ng-attr-hint: error writing output: %v\n", err)
			return 2
		}
	}

	if len(diags) > 0 {
		return 1
	}
	return 0
}

// loadConfig loads the config from an explicit path, or discovers
// .ng-attr-hint.yml from the working directory, merging over defaults.
// The merged config is validated before use.
func loadConfig(path string) (*config.Config, error) {
	var loaded *config.Config

	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path != "" {
		var err error
		loaded, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg := config.Merge(config.Defaults(), loaded)

	known := make(map[string]bool)
	for _, r := range rule.All() {
		known[r.Name()] = true
	}
	if err := cfg.Validate(known); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runInit implements the "init" subcommand: generate .ng-attr-hint.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ng-attr-hint init\n\n"+
			"Generate a default .ng-attr-hint.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: init takes no arguments\n")
		return 2
	}

	const configFile = ".ng-attr-hint.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %s already exists\n", configFile)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "ng-attr-hint: created %s\n", configFile)
	return 0
}

// runHelp implements the "help" subcommand: rule documentation.
func runHelp(args []string) int {
	if len(args) == 0 || args[0] == "rules" {
		rules, err := ngattrhint.ListRules()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
			return 2
		}
		for _, r := range rules {
			fmt.Printf("%s  %-24s %s\n", r.ID, r.Name, r.Description)
		}
		fmt.Println("\nRun 'ng-attr-hint help <rule>' for details on a rule.")
		return 0
	}

	content, err := ngattrhint.LookupRule(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ng-attr-hint: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}

// isStdinPipe reports whether stdin is a pipe rather than a terminal.
func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
