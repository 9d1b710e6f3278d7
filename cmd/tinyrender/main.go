// tinyrender - minimal software rasterizer
// Renders an OBJ or GLB model to an image file as a wireframe, a flat shaded
// scanline fill, or a z-buffered fill.
//
// Usage:
//
//	tinyrender [-w 800] [-h 800] [-m model.obj] [-o output.png] [--mode depth]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taigrr/tinyrender/pkg/config"
	"github.com/taigrr/tinyrender/pkg/export"
	"github.com/taigrr/tinyrender/pkg/models"
	"github.com/taigrr/tinyrender/pkg/render"
)

// options holds flag values that are not part of the render config.
type options struct {
	configPath   string
	preview      bool
	previewWidth int
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd())
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "tinyrender",
		Short: "Render a 3D model to an image with a software rasterizer",
		Long: `tinyrender draws every triangle of an OBJ or GLB model, in file order, onto
a pixel canvas and writes the result as an image. Vertices are expected in
the [-1, 1] cube; use --fit to rescale models that are not.`,
		Example: `  tinyrender
  tinyrender -m head.obj -o head.webp --mode shaded
  tinyrender -m model.glb --fit --mode wireframe --preview`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags(), opts.configPath)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return run(cmd.Context(), logger, cfg, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.IntP("width", "w", def.Width, "output width in pixels")
	f.IntP("height", "h", def.Height, "output height in pixels")
	f.StringP("model", "m", def.Model, "model file (.obj, .glb, .gltf)")
	f.StringP("output", "o", def.Output, "output image (.png, .webp, .tga, .bmp, .tiff)")
	f.String("mode", def.Mode, "render mode: wireframe, flat, depth, shaded")
	f.String("light", def.Light, "light direction x,y,z for flat and shaded modes")
	f.Int64("seed", def.Seed, "seed for per-face colors in depth mode")
	f.Bool("fit", def.Fit, "rescale the model into the [-1, 1] cube before rendering")
	f.BoolVar(&opts.preview, "preview", false, "print a half-block preview to stdout")
	f.IntVar(&opts.previewWidth, "preview-width", 80, "preview width in terminal columns")
	f.StringVar(&opts.configPath, "config", "", "JSON config file; flags given explicitly override it")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// loadConfig merges defaults, the optional config file and every flag the
// user set explicitly, in that order.
func loadConfig(fs *pflag.FlagSet, path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	var flags config.Flags
	if fs.Changed("width") {
		v, _ := fs.GetInt("width")
		flags.Width = &v
	}
	if fs.Changed("height") {
		v, _ := fs.GetInt("height")
		flags.Height = &v
	}
	if fs.Changed("model") {
		v, _ := fs.GetString("model")
		flags.Model = &v
	}
	if fs.Changed("output") {
		v, _ := fs.GetString("output")
		flags.Output = &v
	}
	if fs.Changed("mode") {
		v, _ := fs.GetString("mode")
		flags.Mode = &v
	}
	if fs.Changed("light") {
		v, _ := fs.GetString("light")
		flags.Light = &v
	}
	if fs.Changed("seed") {
		v, _ := fs.GetInt64("seed")
		flags.Seed = &v
	}
	if fs.Changed("fit") {
		v, _ := fs.GetBool("fit")
		flags.Fit = &v
	}
	cfg.Apply(flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config, opts options, stdout io.Writer) error {
	mode, err := cfg.RenderMode()
	if err != nil {
		return err
	}
	light, err := cfg.LightVector()
	if err != nil {
		return err
	}

	mesh, err := models.Load(cfg.Model)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	logger.Debug("model loaded",
		"path", cfg.Model,
		"vertices", mesh.VertexCount(),
		"faces", mesh.FaceCount(),
		"bounds_min", mesh.BoundsMin,
		"bounds_max", mesh.BoundsMax,
	)

	if cfg.Fit {
		mesh.FitUnitCube()
		logger.Debug("model fitted", "bounds_min", mesh.BoundsMin, "bounds_max", mesh.BoundsMax)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height)

	r := render.NewRenderer(mode)
	r.Light = light
	r.Seed = cfg.Seed

	logger.Debug("rendering", "mode", mode, "width", cfg.Width, "height", cfg.Height, "light", light, "seed", cfg.Seed)
	start := time.Now()
	stats := r.Render(mesh, canvas)
	elapsed := time.Since(start)

	canvas.FlipVertical()
	img := canvas.ToImage()
	if err := export.Save(cfg.Output, img); err != nil {
		return err
	}

	logger.Info("rendered",
		"model", mesh.Name,
		"mode", mode,
		"faces", stats.Faces,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"pixels", stats.Pixels,
		"duration", elapsed,
		"output", cfg.Output,
	)

	if opts.preview {
		if err := render.WritePreview(stdout, img, opts.previewWidth); err != nil {
			return err
		}
	}
	return nil
}
