// Package cmd implements the motion CLI commands.
//
// The root command dispatches to subcommands (trace, preview, version); each
// subcommand parses its own flags.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/go-drift/motion/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	// Flags registers the command's flags on fs.
	Flags func(fs *pflag.FlagSet)
	Run   func(fs *pflag.FlagSet, args []string) error
}

var rootCmd = &Command{
	Name:  "motion",
	Short: "motion - wheel picker and overlay animation tools",
	Long: `motion drives the wheel picker and overlay transition engine outside
an app: record per-frame traces or watch the animations in the terminal.

Use "motion <command> --help" for more information about a command.`,
	Usage: "motion [--verbose] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Output streams. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// logger is configured by Execute from the global flags.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	verbose := false
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp()
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version":
			if len(filtered) == 0 {
				printVersion()
				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			verbose = true
		default:
			filtered = append(filtered, arg)
		}
	}
	setupLogging(verbose)

	if len(filtered) == 0 {
		printHelp()
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	fs := pflag.NewFlagSet(cmd.Name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	if cmd.Flags != nil {
		cmd.Flags(fs)
	}
	if err := fs.Parse(filtered[1:]); err != nil {
		if err == pflag.ErrHelp {
			printCommandHelp(cmd, fs)
			return nil
		}
		return err
	}
	return cmd.Run(fs, fs.Args())
}

// Run executes the CLI and returns the process exit code. A MotionError is
// reported through the installed error handler; other errors are printed.
func Run(args []string) int {
	err := Execute(args)
	if err == nil {
		return 0
	}
	var me *errors.MotionError
	if stderrors.As(err, &me) {
		errors.Report(me)
	} else {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
}

func sortedCommands() []*Command {
	out := make([]*Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range sortedCommands() {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log debug records to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  motion trace --placement top --format yaml")
	fmt.Fprintln(stdout, "  motion trace --toggle-at 10 --toggle-at 14 --out close.cbor --format cbor")
	fmt.Fprintln(stdout, "  motion preview")
}

func printCommandHelp(cmd *Command, fs *pflag.FlagSet) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	if fs.HasFlags() {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Flags:")
		fmt.Fprint(stdout, fs.FlagUsages())
	}
}
