package bloomscore_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/bloomscore"
	"github.com/hupe1980/bloomscore/bitarray"
	"github.com/hupe1980/bloomscore/similarity"
)

// Example_dice scores two filters with the Dice coefficient.
func Example_dice() {
	a := bitarray.MustParse("1000001")
	b := bitarray.MustParse("1111011")

	score, err := similarity.Dice(a, b)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(score)
	// Output: 0.5
}

// Example_tanimotoPrecount reuses popcounts that were computed earlier.
func Example_tanimotoPrecount() {
	a := bitarray.MustParse("1000011")
	b := bitarray.MustParse("1111011")
	sum := float64(similarity.Popcount(a) + similarity.Popcount(b))

	score, err := similarity.TanimotoPrecount(a, b, sum)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sum, score)
	// Output: 9 0.5
}

// Example_scoreMany scores one query against a small candidate set.
func Example_scoreMany() {
	s, err := bloomscore.New(bloomscore.WithMetric(similarity.MetricDice))
	if err != nil {
		log.Fatal(err)
	}

	query := bitarray.MustParse("1111011")
	candidates := []bitarray.BitArray{
		bitarray.MustParse("1111011"),
		bitarray.MustParse("1000001"),
		bitarray.MustParse("0000100"),
	}

	counts := make([]int, len(candidates))
	if err := similarity.PopcountMany(candidates, counts); err != nil {
		log.Fatal(err)
	}

	scores := make([]float64, len(candidates))
	if err := s.ScoreMany(context.Background(), query, candidates, counts, scores); err != nil {
		log.Fatal(err)
	}

	fmt.Println(scores)
	// Output: [1 0.5 0]
}
