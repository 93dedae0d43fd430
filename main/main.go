// Command grl encodes captured FusionTrack frames into a frame log and
// inspects existing logs.
//
//	grl encode --config grl.yaml --in capture.yaml --out frames.ftl
//	grl inspect --in frames.ftl
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("missing command")
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: grl <command> [flags]

Commands:
  encode   encode a YAML capture into a frame log
  inspect  print the header and records of a frame log

Run "grl <command> --help" for the flags of a command.
`)
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
