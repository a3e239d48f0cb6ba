package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/willbeason/turtle-fractal/pkg/config"
)

// Flags are the options every command accepts. Output flags override the config file.
type Flags struct {
	Config   string
	PNG      string
	SVG      string
	NoWindow bool
	Verbose  bool
}

// Register adds the flags to cmd and installs a pre-run hook that puts a logger in the
// command's context.
func (f *Flags) Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.Config, "config", "", "TOML file with drawing settings")
	flags.StringVar(&f.PNG, "png", "", "write the drawing to this PNG file")
	flags.StringVar(&f.SVG, "svg", "", "write the drawing to this SVG file")
	flags.BoolVar(&f.NoWindow, "no-window", false, "do not show the drawing in the terminal")
	flags.BoolVarP(&f.Verbose, "verbose", "v", false, "enable verbose logging")

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := charmlog.InfoLevel
		if f.Verbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(WithLogger(cmd.Context(), newLogger(os.Stderr, level)))
	}
}

// Load reads the config file, if any, and applies the output flags to it.
func (f *Flags) Load() (config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return config.Config{}, err
	}

	if f.PNG != "" {
		cfg.Output.PNG = f.PNG
	}
	if f.SVG != "" {
		cfg.Output.SVG = f.SVG
	}
	if f.NoWindow {
		cfg.Output.Window = false
	}
	return cfg, nil
}
