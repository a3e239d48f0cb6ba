package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/willbeason/turtle-fractal/internal/cli"
	"github.com/willbeason/turtle-fractal/pkg/butterfly"
	"github.com/willbeason/turtle-fractal/pkg/config"
	"github.com/willbeason/turtle-fractal/pkg/palette"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
)

func mainCmd() *cobra.Command {
	var flags cli.Flags

	cmd := &cobra.Command{
		Use:   "butterfly",
		Short: "Draw a pink butterfly",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, &flags)
		},
	}
	flags.Register(cmd)

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string, flags *cli.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	ctx := cmd.Context()

	cfg, err := flags.Load()
	if err != nil {
		return err
	}
	cli.LoggerFromContext(ctx).Info("Drawing butterfly", "size", cfg.Butterfly.Size)

	d, err := draw(cfg.Butterfly)
	if err != nil {
		return err
	}

	return cli.Present(ctx, d, cfg, nil)
}

func draw(c config.Butterfly) (*turtle.Drawing, error) {
	bg, err := palette.Parse(c.Background)
	if err != nil {
		return nil, fmt.Errorf("butterfly background: %w", err)
	}

	t := turtle.New(turtle.NewDrawing(bg))
	butterfly.Draw(t, butterfly.Options{Size: c.Size})
	if err := t.Err(); err != nil {
		return nil, err
	}

	return t.Drawing(), nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
