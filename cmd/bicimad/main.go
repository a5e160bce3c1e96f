package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/di"

	"github.com/k0kubun/go-ansi"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
)

const (
	modeTable = "table"
	modePlace = "place"

	usageMessage = `You have two options. Option 1: "table" provides information on all monuments. ` +
		`Option 2: "place" provides information on a particular monument`
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "bicimad",
		Usage: "Application to find the nearest BiciMad station to monuments of Madrid",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "function",
				Aliases: []string{"f"},
				Usage:   usageMessage,
			},
		},
		Action: run,
	}
}

func main() {
	app := newApp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	switch mode := c.String("function"); mode {
	case modeTable:
		return exportTable(c.Context, c.App.Writer)
	case modePlace:
		return queryPlace(c.Context, c.App.Writer)
	default:
		err := pkg.WrapErrorf(nil, pkg.ErrUsage, "unknown function %q. %s", mode, usageMessage)
		return cli.Exit(err, 2)
	}
}

func exportTable(ctx context.Context, out io.Writer) error {
	service, cleanup, err := di.InitializeNearestService(ansi.NewAnsiStderr())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer cleanup()

	path, err := service.ExportTable(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Find here the nearest BiciMAD station to monuments of Madrid: %s\n", path)
	return nil
}

func queryPlace(ctx context.Context, out io.Writer) error {
	service, cleanup, err := di.InitializeQueryService(ansi.NewAnsiStderr())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer cleanup()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if err := service.Run(ctx, line, out); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
