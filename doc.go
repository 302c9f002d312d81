// Package bloomscore scores pairs of Bloom-filter bit arrays used in
// privacy-preserving record linkage.
//
// The scoring functions themselves live in package similarity and are pure.
// This package adds a Scorer: an immutable, option-configured value that
// binds one metric and implementation, and reports each call to a structured
// logger and a metrics collector.
//
// # Quick Start
//
//	a := bitarray.MustParse("1000001")
//	b := bitarray.MustParse("1111011")
//
//	s, _ := bloomscore.New(bloomscore.WithMetric(similarity.MetricDice))
//	score, _ := s.Score(a, b) // 0.5
//
// # One Against Many
//
// Popcounts of a candidate set can be computed once and reused for every
// query:
//
//	counts := make([]int, len(candidates))
//	_ = similarity.PopcountMany(candidates, counts)
//
//	scores := make([]float64, len(candidates))
//	err := s.ScoreMany(ctx, query, candidates, counts, scores)
//
// Counts are trusted as given. See similarity.DicePrecount.
//
// # Concurrency
//
// A Scorer holds no mutable state of its own and may be shared by any number
// of goroutines. Fan-out over a corpus is left to the caller.
//
// # Match Decisions
//
// Scores are not thresholded or ranked here; deciding what is a match belongs
// to the caller.
package bloomscore
