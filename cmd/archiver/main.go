package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/airbusgeo/goes-archiver/common"
	"github.com/airbusgeo/goes-archiver/downloader"
	"github.com/airbusgeo/goes-archiver/interface/provider"
	"github.com/airbusgeo/goes-archiver/service"
	"github.com/airbusgeo/goes-archiver/service/log"
	"github.com/airbusgeo/goes-archiver/window"
	"go.uber.org/zap"
)

type config struct {
	Start         string
	Ago           string
	Duration      string
	StrideMinutes int
	Root          string
	MaxWorkers    int
	Satellite     string
	ImageSize     string
	Verbose       bool
}

func newAppConfig() (*config, error) {
	defaults := newFileDefaults()
	if path := os.Getenv(configPathEnv); path != "" {
		if err := defaults.load(path); err != nil {
			return nil, err
		}
	}

	config := config{}
	flag.StringVar(&config.Start, "start", "", "start time for the image range in ISO-8601 format (e.g. 2024-11-30T12:00:00Z)")
	flag.StringVar(&config.Ago, "ago", "", "start offset back from now, like \"2d12h20m\". Exactly one of -start/-ago is required.")
	flag.StringVar(&config.Duration, "duration", "", "length of the image range, like \"2d12h20m\" (optional, defaults to the range from start until now)")
	flag.IntVar(&config.StrideMinutes, "stride", defaults.StrideMinutes, "time stride between images in minutes (multiple of 10)")
	flag.StringVar(&config.Root, "root", defaults.Root, "root directory to save images")
	flag.IntVar(&config.MaxWorkers, "max-workers", defaults.MaxWorkers, "maximum number of parallel downloads")
	flag.StringVar(&config.Satellite, "sat", defaults.Satellite, "satellite to fetch images from (goes-east or goes-west)")
	flag.StringVar(&config.ImageSize, "size", defaults.ImageSize, "image size variant published by the CDN")
	flag.BoolVar(&config.Verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if config.MaxWorkers < 1 {
		return nil, fmt.Errorf("max-workers (%d) must be positive", config.MaxWorkers)
	}
	return &config, nil
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		log.Fatal("error", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	config, err := newAppConfig()
	if err != nil {
		return err
	}
	log.SetDefault(log.New(config.Verbose))

	sat, err := provider.SatelliteFromString(config.Satellite)
	if err != nil {
		return err
	}

	w, err := window.Resolve(window.Options{
		Start:         config.Start,
		Ago:           config.Ago,
		Duration:      config.Duration,
		StrideMinutes: config.StrideMinutes,
	}, time.Now())
	if err != nil {
		return err
	}

	dir, err := downloader.AllocateDir(config.Root, w)
	if err != nil {
		return err
	}

	ctx = log.With(ctx, "sat", string(sat))
	log.Logger(ctx).Sugar().Infof("fetching %d images from %s to %s with a stride of %d minutes into %s",
		w.Count(), w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), w.StrideMinutes(), dir)

	tasks := make([]common.FetchTask, 0, w.Count())
	for t := range w.Timestamps() {
		tasks = append(tasks, common.FetchTask{Timestamp: t, Dir: dir})
	}

	goes := provider.NewGOESProvider(sat, config.ImageSize)
	fetch := downloader.HTTPFetch(&http.Client{Timeout: 5 * time.Minute})

	pool := downloader.NewPool(config.MaxWorkers)
	outcomes := pool.Run(ctx, tasks, func(ctx context.Context, task common.FetchTask) common.FetchOutcome {
		return downloader.FetchSnapshot(ctx, task, goes, fetch, downloader.AtomicWrite)
	})

	saved := 0
	for _, outcome := range outcomes {
		if outcome.Saved() {
			saved++
			log.Logger(ctx).Sugar().Infof("saved image to %s", outcome.Path)
			continue
		}
		octx := log.With(ctx, "timestamp", common.FormatCompact(outcome.Timestamp))
		if service.Temporary(outcome.Err) {
			log.Logger(octx).Warn("image failed (temporary)", zap.Error(outcome.Err))
		} else {
			log.Logger(octx).Warn("image failed", zap.Error(outcome.Err))
		}
	}
	log.Logger(ctx).Sugar().Infof("done: %d/%d images saved", saved, len(outcomes))
	return nil
}
