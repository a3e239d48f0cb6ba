package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/willbeason/turtle-fractal/pkg/config"
)

// execute runs a command registered with f and returns what Load saw inside it.
func execute(t *testing.T, args ...string) (config.Config, *log.Logger, error) {
	t.Helper()

	var (
		f      Flags
		cfg    config.Config
		logger *log.Logger
	)
	cmd := &cobra.Command{
		Use:           "test",
		Args:          cobra.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger = LoggerFromContext(cmd.Context())
			var err error
			cfg, err = f.Load()
			return err
		},
	}
	f.Register(cmd)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cfg, logger, err
}

func TestFlags_Defaults(t *testing.T) {
	cfg, logger, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if logger == nil || logger == log.Default() {
		t.Fatal("pre-run did not attach a logger")
	}
	if got := logger.GetLevel(); got != log.InfoLevel {
		t.Errorf("logger level = %v, want %v", got, log.InfoLevel)
	}
}

func TestFlags_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	data := "[output]\npng = \"from-file.png\"\nsvg = \"from-file.svg\"\n\n[tree]\npetals = 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, logger, err := execute(t, "--config", path, "--png", "flag.png", "--no-window", "-v")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := config.Output{PNG: "flag.png", SVG: "from-file.svg", Window: false}
	if diff := cmp.Diff(want, cfg.Output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if cfg.Tree.Petals != 7 {
		t.Errorf("tree.petals = %d, want 7 from the file", cfg.Tree.Petals)
	}
	if got := logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("logger level = %v, want %v", got, log.DebugLevel)
	}
}

func TestFlags_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "--config", path); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Execute() error = %v, want %v", err, config.ErrInvalid)
	}
}

func TestFlags_RejectsArgs(t *testing.T) {
	if _, _, err := execute(t, "extra"); err == nil {
		t.Error("Execute() with a positional argument succeeded")
	}
}
