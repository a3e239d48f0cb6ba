package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/turtle-fractal/internal/cli"
	"github.com/willbeason/turtle-fractal/pkg/config"
	"github.com/willbeason/turtle-fractal/pkg/palette"
	"github.com/willbeason/turtle-fractal/pkg/tree"
	"github.com/willbeason/turtle-fractal/pkg/turtle"
)

const seedFlag = "seed"

func mainCmd() *cobra.Command {
	var flags cli.Flags

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a blossom tree with scattered petals",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, &flags)
		},
	}

	flags.Register(cmd)
	cmd.Flags().Int64(seedFlag, 0, "random seed; 0 picks one from the clock")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string, flags *cli.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	ctx := cmd.Context()
	logger := cli.LoggerFromContext(ctx)

	cfg, err := flags.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(seedFlag) {
		cfg.Tree.Seed, _ = cmd.Flags().GetInt64(seedFlag)
	}
	if cfg.Tree.Seed == 0 {
		cfg.Tree.Seed = time.Now().UnixNano()
	}
	logger.Info("Growing tree", "seed", cfg.Tree.Seed, "length", cfg.Tree.Length, "petals", cfg.Tree.Petals)

	d, err := draw(cfg.Tree)
	if err != nil {
		return err
	}

	return cli.Present(ctx, d, cfg, nil)
}

// draw runs the tree scene on a fresh turtle.
func draw(c config.Tree) (*turtle.Drawing, error) {
	bg, err := palette.Parse(c.Background)
	if err != nil {
		return nil, fmt.Errorf("tree background: %w", err)
	}

	t := turtle.New(turtle.NewDrawing(bg))
	r := rand.New(rand.NewSource(c.Seed))

	tree.Draw(t, tree.Options{
		Length:      c.Length,
		Petals:      c.Petals,
		TrunkOffset: c.TrunkOffset,
	}, r)
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
