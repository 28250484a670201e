package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Formats     []string
	Segment     segment.Geometry
	Bar         bar.Frame
	Supersample int
	Workers     int
	Logger      *zap.Logger
}

// Result holds the outcome of rendering one dataset.
type Result struct {
	Name        string
	Title       string
	Kind        dataset.Kind
	Descriptors int
	Files       []string
	Success     bool
	Error       string
}

// Run renders all datasets using a worker pool. Datasets not yet started when
// ctx is cancelled are reported as failed.
func Run(ctx context.Context, cfg Config, sets []dataset.Dataset) []Result {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	total := len(sets)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var progress sync.WaitGroup
	progress.Add(1)
	go func() {
		defer progress.Done()
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f charts/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r := processChart(cfg, sets[idx])
				if r.Success {
					log.Debug("chart rendered",
						zap.String("name", r.Name),
						zap.Int("descriptors", r.Descriptors),
						zap.Strings("files", r.Files))
				} else {
					log.Warn("chart failed", zap.String("name", r.Name), zap.String("error", r.Error))
				}
				results[idx] = r
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
feed:
	for ; sent < total; sent++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- sent:
		}
	}
	close(jobs)

	wg.Wait()
	close(done)
	progress.Wait()

	for i := sent; i < total; i++ {
		results[i] = Result{
			Name:  sets[i].Name,
			Title: sets[i].Title,
			Kind:  sets[i].Kind,
			Error: ctx.Err().Error(),
		}
	}

	return results
}

func processChart(cfg Config, ds dataset.Dataset) Result {
	res := Result{Name: ds.Name, Title: ds.Title, Kind: ds.Kind}

	chart, err := Build(cfg, ds)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Descriptors = chart.Len()

	for _, format := range cfg.Formats {
		file, err := writeChart(cfg, chart, format)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Files = append(res.Files, file)
	}

	res.Success = true
	return res
}
