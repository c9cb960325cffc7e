package process

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"imgenhance/enhance"
	"imgenhance/imgio"
	"imgenhance/palette"
	"imgenhance/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan      string  `help:"Source folder to scan" default:"."`
	Dest      string  `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"enhanced"`
	MaxWidth  int     `help:"Shrink pictures wider than this before processing" group:"resize"`
	MaxHeight int     `help:"Shrink pictures taller than this before processing" group:"resize"`
	Binary    bool    `help:"Reduce pictures to the black and white sentinel colors first" default:"false" group:"noise"`
	Noise     float64 `help:"Percentage of pixels to toggle between the sentinel colors. Only meaningful on binary pictures" default:"0" group:"noise"`
	Seed      int64   `help:"Noise seed. 0 picks one from the clock and logs it" default:"0" group:"noise"`
	Black     string  `help:"Black sentinel color" default:"#000" group:"noise"`
	White     string  `help:"White sentinel color" default:"#FFF" group:"noise"`
	Filter    string  `help:"Denoising filter. With 'both', the mean output is saved as <name>-mean and the median output is the one equalized" enum:"none,mean,median,both" default:"median" group:"filter"`
	Size      int     `help:"Odd filter window size" default:"3" group:"filter"`
	Equalize  bool    `help:"Equalize the histogram of every channel" default:"true" negatable:""`
	Stages    bool    `help:"Also save the output of every step, numbered in pipeline order" default:"false"`
	Palette   string  `help:"Palette name (bw, gray16, vga16, websafe, plan9) or PAL file in RIFF format to apply to the result" group:"palette"`
	Dither    bool    `help:"Apply dithering" default:"false" group:"palette"`
	Format    string  `help:"Output format of enhanced image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`

	Sentinels enhance.Sentinels `kong:"-"`
	Colors    color.Palette     `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	return c.validateOptions()
}

func (c *CLICmd) validateOptions() (err error) {
	switch {
	case c.MaxWidth < 0:
		return fmt.Errorf("invalid max width: %d", c.MaxWidth)
	case c.MaxHeight < 0:
		return fmt.Errorf("invalid max height: %d", c.MaxHeight)
	case c.Noise < 0 || c.Noise > 100:
		return fmt.Errorf("invalid noise percentage: %g", c.Noise)
	case c.Filter != "none" && (c.Size < 3 || c.Size%2 == 0):
		return fmt.Errorf("invalid filter size %d: %w", c.Size, enhance.ErrInvalidWindowSize)
	}

	if c.Sentinels.Black, err = parseHexToPixel(c.Black); err != nil {
		return fmt.Errorf("invalid black sentinel: %w", err)
	}
	if c.Sentinels.White, err = parseHexToPixel(c.White); err != nil {
		return fmt.Errorf("invalid white sentinel: %w", err)
	}
	if c.Sentinels.Black == c.Sentinels.White {
		return fmt.Errorf("black and white sentinels are both %s", c.Black)
	}

	if c.Noise > 0 && !c.Binary {
		slog.Warn("noise is injected into pictures that were not binarized", "noise", c.Noise)
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
		slog.Info("picked noise seed", "seed", c.Seed)
	}

	if c.Palette != "" {
		if c.Colors, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	return nil
}

// pipeline builds the steps for one picture. The noise source is derived from
// the run seed and the file name so results do not depend on scheduling.
func (c *CLICmd) pipeline(fileName string) enhance.Pipeline {
	var p enhance.Pipeline
	if c.Binary {
		p = append(p, enhance.BinaryStep(c.Sentinels))
	}
	if c.Noise > 0 {
		h := fnv.New64a()
		_, _ = h.Write([]byte(fileName))
		injector := enhance.NewNoiseInjector(c.Seed^int64(h.Sum64()), c.Sentinels)
		p = append(p, enhance.NoiseStep(injector, c.Noise))
	}

	switch c.Filter {
	case "mean":
		p = append(p, enhance.MeanStep(c.Size))
	case "median":
		p = append(p, enhance.MedianStep(c.Size))
	case "both":
		mean := enhance.MeanStep(c.Size)
		mean.Side = true
		p = append(p, mean, enhance.MedianStep(c.Size))
	}

	if c.Equalize {
		p = append(p, enhance.EqualizeStep())
	}
	return p
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				if err := c.process(logger, filePath, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not enhance image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, filePath, fileName string) error {
	img, imgType, err := imgio.Decode(filePath)
	if err != nil {
		return err
	}

	if c.MaxWidth > 0 || c.MaxHeight > 0 {
		img = shrink(logger, img, c.MaxWidth, c.MaxHeight)
	}

	outType := imgio.OutputType(imgType, c.Format)
	baseName := fileName[:len(fileName)-len(filepath.Ext(fileName))]

	saveAs := func(name, step string, img image.Image) error {
		path, err := imgio.Save(img, outType, c.Dest, name)
		if err != nil {
			return err
		}
		logger.Debug("saved", "step", step, "to", path)
		return nil
	}

	stage := 1
	save := func(step string, img image.Image) error {
		name := baseName
		if c.Stages {
			name = fmt.Sprintf("%s-%02d-%s", baseName, stage, step)
		}
		stage++
		return saveAs(name, step, img)
	}

	grid := enhance.FromImage(img)
	if c.Stages {
		if err := save("original", grid.Image()); err != nil {
			return err
		}
	}

	p := c.pipeline(fileName)
	logger.Info("enhancing", "width", grid.Width, "height", grid.Height, "steps", len(p))

	var observe enhance.Observer
	switch {
	case c.Stages:
		observe = func(step string, g *enhance.Grid) error {
			return save(step, g.Image())
		}
	case c.Filter == "both":
		// the mean output is a side result, saved next to the final picture
		observe = func(step string, g *enhance.Grid) error {
			if step != "mean" {
				return nil
			}
			return saveAs(baseName+"-mean", step, g.Image())
		}
	}

	out, err := p.Run(grid, observe)
	if err != nil {
		return err
	}

	if c.Stages && len(p) > 0 && c.Colors == nil {
		return nil
	}

	var result image.Image = out.Image()
	if c.Colors != nil {
		result = repalette(logger.With("palette", c.Palette), result, c.Colors, c.Dither)
	}
	return save("final", result)
}
