package match

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/statistics"
)

// Summary is the outcome of a completed run
type Summary struct {
	Tally     *statistics.Tally
	Lines     int           // lines read, including blank and malformed ones
	StoppedAt int           // line that ended input under PolicyStop, 0 if input was exhausted
	Elapsed   time.Duration // wall time measured on the runner's clock
}

// Option configures a Runner
type Option func(*Runner)

// WithWorkers sets the number of classification workers
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithPolicy sets the parse-error policy
func WithPolicy(p Policy) Option {
	return func(r *Runner) {
		r.policy = p
	}
}

// WithLogger sets the logger used for per-line diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used to time runs
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// Runner reads lines of paired hands and tallies the winners.
// Parsing is sequential so PolicyStop keeps its meaning; classification
// is spread over a pool of workers whose partial tallies are merged at the end.
type Runner struct {
	workers int
	policy  Policy
	logger  *log.Logger
	clock   quartz.Clock
}

// NewRunner creates a runner with defaults of one worker per CPU and PolicyStop
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.NumCPU(),
		policy:  PolicyStop,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type job struct {
	line int
	pair Pair
}

// Run consumes in until EOF, a stop on a malformed line, an error, or ctx cancellation
func (r *Runner) Run(ctx context.Context, in io.Reader) (*Summary, error) {
	start := r.clock.Now()
	summary := &Summary{Tally: &statistics.Tally{}}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, r.workers*4)

	g.Go(func() error {
		defer close(jobs)
		return r.readLines(ctx, in, jobs, summary)
	})

	partials := make([]*statistics.Tally, r.workers)
	for w := range partials {
		partial := &statistics.Tally{}
		partials[w] = partial
		g.Go(func() error {
			for j := range jobs {
				result := j.pair.Compare(j.line)
				r.logger.Debug("compared", "line", j.line,
					"first", result.First, "second", result.Second, "outcome", result.Outcome)
				partial.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, partial := range partials {
		summary.Tally.Merge(partial)
	}
	summary.Elapsed = r.clock.Since(start)

	r.logger.Info("run complete",
		"lines", summary.Lines,
		"hands", summary.Tally.Hands,
		"malformed", summary.Tally.Malformed,
		"elapsed", summary.Elapsed)
	return summary, nil
}

// readLines owns summary.Lines, summary.StoppedAt and the malformed count
// until the group has finished.
func (r *Runner) readLines(ctx context.Context, in io.Reader, jobs chan<- job, summary *Summary) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		summary.Lines++
		lineNo := summary.Lines

		pair, err := ParseLine(scanner.Text())
		if errors.Is(err, ErrBlankLine) {
			continue
		}
		if err != nil {
			switch r.policy {
			case PolicySkip:
				r.logger.Warn("skipping malformed line", "line", lineNo, "error", err)
				summary.Tally.AddMalformed()
				continue
			case PolicyFail:
				return &LineError{Line: lineNo, Err: err}
			default:
				r.logger.Debug("stopping at malformed line", "line", lineNo, "error", err)
				summary.StoppedAt = lineNo
				return nil
			}
		}

		select {
		case jobs <- job{line: lineNo, pair: pair}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
