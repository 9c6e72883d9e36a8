// SketchBoard — headless driver for the canvas state model
//
// Reads editor commands line by line from stdin (or from repeated -e flags)
// and applies them to a canvas seeded with the default shapes. It stands in
// for a rendering layer when scripting or debugging the model.
//
// Build:
//   go build -o sketchboard ./cmd/sketchboard
//
// Example:
//   sketchboard -e "box 0 0 500 500" -e "delete" -e "undo" -e "shapes"

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/piwi3910/SketchBoard/internal/applog"
	"github.com/piwi3910/SketchBoard/internal/canvas"
	"github.com/piwi3910/SketchBoard/internal/project"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketchboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		execs      commandList
		configPath string
		verbose    bool
	)
	fs.Var(&execs, "e", "execute command in immediate mode (may be specified multiple times)")
	fs.StringVar(&configPath, "config", project.DefaultConfigPath(), "path to the canvas config file")
	fs.BoolVar(&verbose, "v", false, "log model activity to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if verbose {
		applog.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := project.LoadCanvasConfig(configPath)
	if err != nil {
		return err
	}
	m := canvas.New(canvas.WithConfig(cfg))
	m.Subscribe(func(c canvas.Change) {
		applog.Logger().Debug("canvas changed", "kind", c.Kind.String(), "revision", c.Revision)
	})
	s := newSession(m, stdout)

	if len(execs) > 0 {
		for _, line := range execs {
			done, err := s.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		done, err := s.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
