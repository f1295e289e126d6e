package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// defaultBatchSize is the number of property pairs evaluated between
// cancellation checks.
const defaultBatchSize = 1024

// Harness checks an implementation under test against a reference model.
//
// A Harness holds no per-run state; the same value may run any number of
// fixed-case runs and property checks, including concurrently.
type Harness struct {
	impl      Func
	reference Func
	logger    *slog.Logger
	workers   int
	keepGoing bool
	batchSize int
}

// Option configures a Harness.
type Option func(*Harness)

// WithReference replaces the ReferenceMax oracle.
func WithReference(f Func) Option {
	return func(h *Harness) {
		h.reference = f
	}
}

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithWorkers evaluates inputs on n goroutines. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(h *Harness) {
		h.workers = max(n, 1)
	}
}

// WithKeepGoing makes the property check collect every distinct failing pair
// instead of stopping at the first.
func WithKeepGoing(keepGoing bool) Option {
	return func(h *Harness) {
		h.keepGoing = keepGoing
	}
}

// withBatchSize is used by tests to exercise batch boundaries.
func withBatchSize(n int) Option {
	return func(h *Harness) {
		h.batchSize = max(n, 1)
	}
}

// New creates a harness for impl.
func New(impl Func, opts ...Option) *Harness {
	h := &Harness{
		impl:      impl,
		reference: ReferenceMax,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:   1,
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunFixedCases runs every case and compares the result to its expected value.
//
// All cases run even after a failure. The report lists one outcome per case in
// input order and one ResultMismatch per failing case. The error is non-nil
// only if ctx is cancelled.
func (h *Harness) RunFixedCases(ctx context.Context, cases []TestCase) (*Report, error) {
	report := newReport(KindFixed)
	report.Cases = make([]CaseOutcome, len(cases))

	err := h.parallel(ctx, len(cases), func(i int) {
		tc := cases[i]
		actual := h.impl(tc.Input.A, tc.Input.B)
		report.Cases[i] = CaseOutcome{
			Name:     tc.Name,
			A:        tc.Input.A,
			B:        tc.Input.B,
			Actual:   actual,
			Expected: tc.Expected,
			Pass:     actual == tc.Expected,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("fixed cases: %w", err)
	}

	for _, outcome := range report.Cases {
		report.Checked++
		if outcome.Pass {
			continue
		}
		m := &ResultMismatch{
			Case:     outcome.Name,
			Input:    InputPair{A: outcome.A, B: outcome.B},
			Actual:   outcome.Actual,
			Expected: outcome.Expected,
		}
		report.AddFailure(m)
		h.logger.Info("fixed case failed",
			"case", m.Case,
			"a", m.Input.A,
			"b", m.Input.B,
			"actual", m.Actual,
			"expected", m.Expected,
		)
	}

	h.logger.Info("fixed cases completed",
		"cases", len(cases),
		"failed", len(report.Failures),
	)
	return report, nil
}

// RunPropertyCheck compares the implementation with the reference model over
// every pair in domain.
//
// Pairs are generated on the calling goroutine, so the outcome depends only
// on the domain and not on the worker count. The first mismatch is the one
// with the lowest trial number.
func (h *Harness) RunPropertyCheck(ctx context.Context, domain Domain) (*Report, error) {
	if err := domain.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domain: %w", err)
	}

	report := newReport(KindProperty)
	report.Seed = domain.Seed

	src := domain.source()
	batch := make([]InputPair, 0, h.batchSize)
	seen := make(map[InputPair]bool)

	h.logger.Debug("property check started",
		"seed", domain.Seed,
		"pairs", domain.Size(),
		"workers", h.workers,
	)

	for {
		batch = batch[:0]
		for len(batch) < h.batchSize {
			p, ok := src.Next()
			if !ok {
				break
			}
			batch = append(batch, p)
		}
		if len(batch) == 0 {
			break
		}

		base := report.Checked
		found := make([]*ResultMismatch, len(batch))
		err := h.parallel(ctx, len(batch), func(i int) {
			p := batch[i]
			actual := h.impl(p.A, p.B)
			expected := h.reference(p.A, p.B)
			if actual != expected {
				found[i] = &ResultMismatch{
					Trial:    base + i + 1,
					Input:    p,
					Actual:   actual,
					Expected: expected,
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("property check: %w", err)
		}

		for i, m := range found {
			if m == nil || seen[m.Input] {
				continue
			}
			seen[m.Input] = true
			report.AddFailure(m)
			h.logger.Info("property check mismatch",
				"trial", m.Trial,
				"a", m.Input.A,
				"b", m.Input.B,
				"actual", m.Actual,
				"expected", m.Expected,
			)
			if !h.keepGoing {
				report.Checked = base + i + 1
				return report, nil
			}
		}
		report.Checked = base + len(batch)
	}

	h.logger.Info("property check completed",
		"seed", domain.Seed,
		"checked", report.Checked,
		"failed", len(report.Failures),
	)
	return report, nil
}

// parallel calls fn for every index in [0, n). Each call must only write to
// state owned by its index.
func (h *Harness) parallel(ctx context.Context, n int, fn func(i int)) error {
	if h.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}
