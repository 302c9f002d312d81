package bloomscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/bloomscore/bitarray"
	"github.com/hupe1980/bloomscore/similarity"
)

// scoreManyChunk is the number of candidates scored between context checks.
const scoreManyChunk = 256

// Scorer scores bit-array pairs with one fixed metric and implementation.
//
// A Scorer is immutable after New and safe for concurrent use.
type Scorer struct {
	metric   similarity.Metric
	impl     similarity.Implementation
	fn       similarity.Func
	precount similarity.PrecountFunc
	logger   *Logger
	metrics  MetricsCollector
}

// New creates a Scorer. It fails with ErrInvalidOption if the metric and
// implementation combination has no scoring function.
func New(optFns ...Option) (*Scorer, error) {
	o := applyOptions(optFns)

	fn, err := similarity.Provider(o.metric, o.impl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	precount, err := similarity.PrecountProvider(o.metric)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return &Scorer{
		metric:   o.metric,
		impl:     o.impl,
		fn:       fn,
		precount: precount,
		logger:   o.logger.WithMetric(o.metric, o.impl),
		metrics:  o.metricsCollector,
	}, nil
}

// Metric returns the configured metric.
func (s *Scorer) Metric() similarity.Metric { return s.metric }

// Implementation returns the configured implementation.
func (s *Scorer) Implementation() similarity.Implementation { return s.impl }

// Score scores a against b.
func (s *Scorer) Score(a, b bitarray.BitArray) (float64, error) {
	start := time.Now()
	score, err := s.fn(a, b)
	s.metrics.RecordScore(s.metric, time.Since(start), err)
	s.logger.LogScore(context.Background(), a.Len(), score, err)
	return score, err
}

// ScorePrecount scores a against b given countSum = Popcount(a) + Popcount(b).
// The sum is trusted as given; see similarity.DicePrecount.
func (s *Scorer) ScorePrecount(a, b bitarray.BitArray, countSum float64) (float64, error) {
	start := time.Now()
	score, err := s.precount(a, b, countSum)
	s.metrics.RecordScore(s.metric, time.Since(start), err)
	s.logger.LogScore(context.Background(), a.Len(), score, err)
	return score, err
}

// ScoreMany writes the score of query against many[i] to out[i].
//
// If counts is non-nil, counts[i] is trusted as Popcount(many[i]) and the
// precount path is used. The Reference implementation ignores counts.
// ctx is checked between chunks of candidates; on cancellation out is
// partially filled and ctx.Err() is returned.
func (s *Scorer) ScoreMany(ctx context.Context, query bitarray.BitArray, many []bitarray.BitArray, counts []int, out []float64) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordScoreMany(s.metric, len(many), time.Since(start), err)
		s.logger.LogScoreMany(ctx, len(many), counts != nil, err)
	}()

	if len(out) < len(many) {
		return fmt.Errorf("%w: out has %d slots for %d candidates", ErrInvalidInput, len(out), len(many))
	}
	if counts != nil && len(counts) < len(many) {
		return fmt.Errorf("%w: counts has %d entries for %d candidates", ErrInvalidInput, len(counts), len(many))
	}

	for lo := 0; lo < len(many); lo += scoreManyChunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := min(lo+scoreManyChunk, len(many))

		var chunkCounts []int
		if counts != nil {
			chunkCounts = counts[lo:hi]
		}
		if err := s.scoreChunk(query, many[lo:hi], chunkCounts, out[lo:hi]); err != nil {
			return offsetIndex(err, lo)
		}
	}
	return nil
}

func (s *Scorer) scoreChunk(query bitarray.BitArray, many []bitarray.BitArray, counts []int, out []float64) error {
	if s.metric == similarity.MetricDice && s.impl == similarity.Optimized {
		return similarity.DiceOneAgainstMany(query, many, counts, out)
	}

	queryCount := -1
	for i, c := range many {
		var (
			score float64
			err   error
		)
		if counts != nil && s.impl == similarity.Optimized {
			if queryCount < 0 {
				queryCount = similarity.Popcount(query)
			}
			score, err = s.precount(query, c, float64(queryCount+counts[i]))
		} else {
			score, err = s.fn(query, c)
		}
		if err != nil {
			return offsetIndex(err, i)
		}
		out[i] = score
	}
	return nil
}

// offsetIndex shifts the candidate index of a length mismatch by off.
// Pair errors (Index -1) become candidate errors at off.
func offsetIndex(err error, off int) error {
	var lm *similarity.ErrLengthMismatch
	if !errors.As(err, &lm) {
		return err
	}
	idx := off
	if lm.Index >= 0 {
		idx = lm.Index + off
	}
	return &similarity.ErrLengthMismatch{Left: lm.Left, Right: lm.Right, Index: idx}
}
