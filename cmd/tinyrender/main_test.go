package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/tinyrender/pkg/config"
	"github.com/taigrr/tinyrender/pkg/export"
	"github.com/taigrr/tinyrender/pkg/models"
)

const sampleModel = "../../obj/octahedron/octahedron.obj"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunWritesImage(t *testing.T) {
	for _, mode := range []string{"wireframe", "flat", "depth", "shaded"} {
		t.Run(mode, func(t *testing.T) {
			cfg := config.Default()
			cfg.Model = sampleModel
			cfg.Width, cfg.Height = 64, 48
			cfg.Mode = mode
			cfg.Output = filepath.Join(t.TempDir(), "out.png")

			if err := run(context.Background(), discardLogger(), cfg, options{}, io.Discard); err != nil {
				t.Fatalf("run: %v", err)
			}

			f, err := os.Open(cfg.Output)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
				t.Errorf("output is %dx%d, want 64x48", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRunFlipsOutput(t *testing.T) {
	// A triangle touching only the bottom edge in model space must land on
	// the last image row after the flip.
	dir := t.TempDir()
	model := filepath.Join(dir, "tri.obj")
	obj := "v -1 -1 0\nv 1 -1 0\nv 0 0 0\nf 1 2 3\n"
	if err := os.WriteFile(model, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Model = model
	cfg.Width, cfg.Height = 20, 20
	cfg.Mode = "flat"
	cfg.Output = filepath.Join(dir, "out.png")
	if err := run(context.Background(), discardLogger(), cfg, options{}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if r, _, _, _ := img.At(10, 19).RGBA(); r == 0 {
		t.Error("bottom row is empty; image was not flipped")
	}
	if r, _, _, _ := img.At(10, 0).RGBA(); r != 0 {
		t.Error("top row is lit; image was not flipped")
	}
	if _, _, _, a := img.At(10, 0).RGBA(); a != 0 {
		t.Errorf("uncovered pixel alpha = %d, want transparent background", a)
	}
}

func TestRunPreview(t *testing.T) {
	cfg := config.Default()
	cfg.Model = sampleModel
	cfg.Width, cfg.Height = 40, 40
	cfg.Output = filepath.Join(t.TempDir(), "out.bmp")

	var stdout bytes.Buffer
	opts := options{preview: true, previewWidth: 20}
	if err := run(context.Background(), discardLogger(), cfg, opts, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	// 20 columns by 10 rows of half blocks.
	if cells := strings.Count(stdout.String(), "▀"); cells != 200 {
		t.Errorf("preview has %d cells, want 200", cells)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("v 1 x 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		model string
		is    error
	}{
		{"missing model", filepath.Join(dir, "nope.obj"), os.ErrNotExist},
		{"malformed number", bad, models.ErrParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Model = tc.model
			cfg.Output = filepath.Join(dir, "out.png")
			err := run(context.Background(), discardLogger(), cfg, options{}, io.Discard)
			if !errors.Is(err, tc.is) {
				t.Fatalf("run error = %v, want %v", err, tc.is)
			}
			if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
				t.Error("no output should be written on failure")
			}
		})
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(path, []byte(`{"width": 100, "height": 50, "mode": "flat"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"-w", "30", "--mode", "shaded"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd.Flags(), path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != 30 {
		t.Errorf("Width = %d, want flag value 30", cfg.Width)
	}
	if cfg.Height != 50 {
		t.Errorf("Height = %d, want file value 50", cfg.Height)
	}
	if cfg.Mode != "shaded" {
		t.Errorf("Mode = %q, want shaded", cfg.Mode)
	}
}

func TestLoadConfigRejectsOutput(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"-o", "out.gif"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(cmd.Flags(), ""); !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}
