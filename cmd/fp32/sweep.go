package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/fp32"
	"github.com/avdva/fp32/vectors"
)

// sweepBatch is the number of cases a worker runs between progress updates.
const sweepBatch = 4096

// SweepCmd compares the engine with hardware on random operands.
type SweepCmd struct {
	Count      int64  `default:"1000000" env:"FP32_SWEEP_COUNT" help:"Number of random operand pairs per operation."`
	Workers    int    `default:"0" env:"FP32_WORKERS" help:"Number of workers, 0 for GOMAXPROCS."`
	Seed       int64  `env:"FP32_SEED" help:"Random seed, 0 for a time based one."`
	Op         string `enum:"add,mul,both" default:"both" help:"Operations to check (add, mul, both)."`
	Normal     bool   `help:"Only generate normal operands, which can not overflow or underflow."`
	Out        string `type:"path" help:"Record mismatching cases into a suite file (.yaml or .cbor)."`
	MaxRecords int    `default:"100" help:"Maximum number of recorded cases."`
	NoProgress bool   `help:"Do not show the progress bar."`
}

type sweepStats struct {
	mu         sync.Mutex
	suite      vectors.Suite
	maxRecords int

	total      atomic.Int64
	mismatches atomic.Int64
}

func (s *sweepStats) record(op fp32.Op, lh, rh fp32.Fields) {
	s.mismatches.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.suite.Cases) < s.maxRecords {
		s.suite.Record(op, lh, rh)
	}
}

// Run starts the workers and waits for them to finish.
func (c *SweepCmd) Run(g *Globals) error {
	ops, err := c.ops()
	if err != nil {
		return err
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.logger.Info("starting sweep", "count", c.Count, "workers", workers, "seed", seed, "normal", c.Normal)

	var barOut io.Writer = g.errOut
	if c.NoProgress {
		barOut = io.Discard
	}
	bar := progressbar.NewOptions64(c.Count*int64(len(ops)),
		progressbar.OptionSetWriter(barOut),
		progressbar.OptionSetDescription("sweep"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	stats := &sweepStats{suite: vectors.Suite{Name: fmt.Sprintf("sweep-%d", seed)}, maxRecords: c.MaxRecords}
	eg, ctx := errgroup.WithContext(g.ctx)
	perWorker := c.Count / int64(workers)
	for i := 0; i < workers; i++ {
		n := perWorker
		if i == 0 {
			n += c.Count % int64(workers)
		}
		rnd := rand.New(rand.NewSource(seed + int64(i)))
		eg.Go(func() error {
			return c.work(ctx, rnd, n, ops, stats, bar)
		})
	}
	err = eg.Wait()
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("sweep interrupted: %w", err)
	}

	total, mismatches := stats.total.Load(), stats.mismatches.Load()
	g.logger.Info("sweep finished", "cases", total, "mismatches", mismatches, "seed", seed)
	if mismatches == 0 {
		return nil
	}
	if c.Out != "" {
		if err := vectors.Save(c.Out, &stats.suite); err != nil {
			return err
		}
		g.logger.Info("recorded mismatches", "file", c.Out, "cases", len(stats.suite.Cases))
	}
	return fmt.Errorf("%d of %d cases differ from hardware", mismatches, total)
}

func (c *SweepCmd) ops() ([]fp32.Op, error) {
	switch c.Op {
	case "both":
		return []fp32.Op{fp32.OpAdd, fp32.OpMul}, nil
	default:
		op, err := fp32.ParseOp(c.Op)
		if err != nil {
			return nil, err
		}
		return []fp32.Op{op}, nil
	}
}

func (c *SweepCmd) work(ctx context.Context, rnd *rand.Rand, n int64, ops []fp32.Op, stats *sweepStats, bar *progressbar.ProgressBar) error {
	for done := int64(0); done < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := min(n-done, sweepBatch)
		for i := int64(0); i < batch; i++ {
			lh, rh := c.operand(rnd), c.operand(rnd)
			for _, op := range ops {
				got := fp32.Apply(op, lh, rh)
				want := fp32.Decompose(fp32.Reference(op, lh.Float32(), rh.Float32()))
				if !fp32.LooseEqual(got, want) && !(got.IsZero() && want.IsZero()) {
					stats.record(op, lh, rh)
				}
			}
		}
		done += batch
		stats.total.Add(batch * int64(len(ops)))
		_ = bar.Add64(batch * int64(len(ops)))
	}
	return nil
}

// operand returns a random operand.
// Normal operands have exponents in [77, 176], so that neither sums nor products
// leave the normal range.
func (c *SweepCmd) operand(rnd *rand.Rand) fp32.Fields {
	if !c.Normal {
		return fp32.FromBits(rnd.Uint32())
	}
	return fp32.Fields{
		Sign: rnd.Uint32() & 1,
		Exp:  uint32(rnd.Intn(100) + 77),
		Mant: rnd.Uint32() & (1<<23 - 1),
	}
}
