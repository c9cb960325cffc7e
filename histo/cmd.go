package histo

import (
	"encoding/csv"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"imgenhance/enhance"
	"imgenhance/imgio"
	"imgenhance/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan      string `help:"Source folder to scan" default:"."`
	CSV       string `help:"If given, write the histograms of every picture as CSV into this folder. Relative to scan dir if not absolute" name:"csv"`
	Luminance bool   `help:"Also report the luminance histogram" default:"false"`
}

var (
	channelNames = []string{"blue", "green", "red"}
	grayNames    = []string{"gray"}
)

// toGrid keeps gray pictures on a single channel.
func toGrid(img image.Image) (*enhance.Grid, []string) {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return enhance.FromGray(img), grayNames
	}
	return enhance.FromImage(img), channelNames
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

	if c.CSV != "" && !filepath.IsAbs(c.CSV) {
		c.CSV = filepath.Join(scanDir, c.CSV)
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if c.CSV != "" {
		if err := os.MkdirAll(c.CSV, 0o755); err != nil {
			return fmt.Errorf("unable to create csv folder %q: %w", c.CSV, err)
		}
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var okCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		worker(func() {
			logger := slog.Default().With("file", filepath.Join(c.Scan, name))
			if err := c.report(logger, name); err != nil {
				errCount.Add(1)
				logger.Error("could not analyse image", "error", err)
				return
			}
			okCount.Add(1)
		})
	}

	wait(true)

	slog.Info("stats", "analysed", okCount.Load(), "errors", errCount.Load(),
		"total", okCount.Load()+errCount.Load())

	if n := errCount.Load(); n > 0 {
		return fmt.Errorf("error processing %d files", n)
	}
	return nil
}

func (c *CLICmd) report(logger *slog.Logger, fileName string) error {
	img, _, err := imgio.Decode(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	grid, names := toGrid(img)
	hists := make([]enhance.Histogram, 0, 4)
	for ch := range grid.Channels {
		hists = append(hists, enhance.ChannelHistogram(grid, ch))
	}
	if c.Luminance {
		names = append(names[:len(names):len(names)], "luminance")
		hists = append(hists, enhance.LuminanceHistogram(grid))
	}

	for i, h := range hists {
		s := channelStats(h)
		logger.Info("histogram", "channel", names[i],
			"min", s.Min, "max", s.Max, "mean", fmt.Sprintf("%.2f", s.Mean), "levels", s.Levels,
			"distance", s.Distance, "equalized_distance", s.EqualizedDistance)
	}

	if c.CSV == "" {
		return nil
	}
	csvName := filepath.Join(c.CSV, fileName[:len(fileName)-len(filepath.Ext(fileName))]+".csv")
	return writeCSV(csvName, names, hists)
}

func writeCSV(name string, names []string, hists []enhance.Histogram) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create csv file %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close csv file %q: %w", name, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"level"}, names...)); err != nil {
		return fmt.Errorf("could not write csv header %q: %w", name, err)
	}

	row := make([]string, len(hists)+1)
	for level := range enhance.Bins {
		row[0] = strconv.Itoa(level)
		for i, h := range hists {
			row[i+1] = strconv.Itoa(h[level])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("could not write csv row %q: %w", name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not flush csv file %q: %w", name, err)
	}
	return nil
}
