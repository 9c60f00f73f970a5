package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/davidmdm/x/xcontext"

	"github.com/chive/kubecfg/internal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if internal.IsWarning(err) {
			return
		}
		os.Exit(1)
	}
}

//go:embed cmd_help.txt
var rootHelp string

func init() {
	rootHelp = strings.TrimSpace(internal.Colorize(rootHelp))
}

func run() error {
	ctx, done := xcontext.WithSignalCancelation(context.Background(), syscall.SIGINT)
	defer done()

	params, err := GetParams(os.Args[1:])
	if err != nil {
		return err
	}

	switch cmd := params.Command; cmd {
	case "":
		return Execute(ctx, *params)
	case "version":
		return Version(ctx)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

type Params struct {
	Command  string
	Out      string
	DiffOnly bool
	Color    bool
	Context  int
	Summary  bool
	Debug    bool
}

func GetParams(args []string) (*Params, error) {
	flagset := flag.NewFlagSet("kubecfg", flag.ContinueOnError)

	flagset.Usage = func() {
		fmt.Fprintln(flagset.Output(), rootHelp)
		flagset.PrintDefaults()
	}

	var params Params

	flagset.StringVar(&params.Out, "out", "out", "directory to write manifests to, if out is - outputs yaml to standard out")
	flagset.BoolVar(&params.DiffOnly, "diff-only", false, "show diff between the manifests in out and the would be written state. Does not write anything")
	flagset.BoolVar(&params.Color, "color", term.IsTerminal(int(os.Stdout.Fd())), "use colored output in diffs")
	flagset.IntVar(&params.Context, "context", 4, "number of lines of context in diff (ignored if not using -diff-only)")
	flagset.BoolVar(&params.Summary, "summary", false, "print a table of the written manifests")
	flagset.BoolVar(&params.Debug, "debug", false, "print debug timings to stderr")

	if err := flagset.Parse(args); err != nil {
		return nil, err
	}

	params.Command = flagset.Arg(0)

	if params.Out == "" {
		return nil, errors.New("out cannot be empty")
	}
	if params.DiffOnly && params.Out == "-" {
		return nil, errors.New("cannot diff against standard out: -diff-only requires an output directory")
	}

	return &params, nil
}
