// Package partition distributes an integer quantity across a fixed number of
// buckets with randomized, non-deterministic shares, e.g. loot or reward
// amounts across drop slots. Each allocation should stay inside the
// [MinPerBucket, MaxPerBucket] band and the shares should sum to the total
// whenever the band allows it.
package partition

import (
	mathRand "math/rand/v2"

	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/randutil"
)

var (
	ErrInvalidConfig = errors.New("invalid partition configuration")
	ErrInfeasible    = errors.New("no allocation within the band can reach the requested total")
)

type Request struct {
	// Total is the quantity to distribute, >= 0.
	Total int
	// MinPerBucket and MaxPerBucket bound each bucket's share, inclusive.
	MinPerBucket int
	MaxPerBucket int
	// BucketCount is the number of shares to produce, > 0.
	BucketCount int
}

func (req Request) validate() error {
	if req.BucketCount <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "bucket count must be positive, got %v", req.BucketCount)
	}
	if req.MinPerBucket > req.MaxPerBucket {
		return errors.Wrapf(ErrInvalidConfig, "min per bucket %v is above max per bucket %v",
			req.MinPerBucket, req.MaxPerBucket)
	}
	if req.Total < 0 {
		return errors.Wrapf(ErrInvalidConfig, "total must not be negative, got %v", req.Total)
	}
	return nil
}

// feasible reports whether some allocation can respect both the band and the total.
func (req Request) feasible() bool {
	return req.MinPerBucket*req.BucketCount <= req.Total &&
		req.Total <= req.MaxPerBucket*req.BucketCount
}

// A Splitter owns its random generator, so each Splitter must only be used
// from one goroutine at a time. The package-level Split creates a fresh one
// per call and is safe for concurrent use.
type Splitter struct {
	rng        *mathRand.Rand
	compensate compensationPolicy
}

func New() *Splitter {
	return &Splitter{rng: randutil.NewRand(), compensate: sharedFlagCompensation}
}

// NewSeeded returns a Splitter whose output is reproducible for a given seed.
func NewSeeded(seed1, seed2 uint64) *Splitter {
	return &Splitter{rng: mathRand.New(mathRand.NewPCG(seed1, seed2)), compensate: sharedFlagCompensation}
}

// Split distributes total across bucketCount shares using a fresh
// crypto-seeded generator, so repeated calls yield different distributions.
func Split(total, minPerBucket, maxPerBucket, bucketCount int) ([]int, error) {
	return New().Split(Request{
		Total:        total,
		MinPerBucket: minPerBucket,
		MaxPerBucket: maxPerBucket,
		BucketCount:  bucketCount,
	})
}

// Split returns the shares in randomized order, so a share's position carries
// no information about its size.
//
// When the band cannot reach the total, the best-effort allocation is returned
// together with an error matching ErrInfeasible. A total below the bucket
// count short-circuits to one unit per bucket; the returned sum then diverges
// from the total by contract and no error is reported.
func (s *Splitter) Split(req Request) ([]int, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Total == 0 {
		return make([]int, req.BucketCount), nil
	}
	if req.Total < req.BucketCount {
		buckets := make([]int, req.BucketCount)
		for i := range buckets {
			buckets[i] = 1
		}
		return buckets, nil
	}

	buckets := s.sample(req.BucketCount, req.Total)
	normalize(buckets, req.Total)
	s.compensate(buckets, req.MinPerBucket, req.MaxPerBucket)
	err := rebalance(buckets, req)
	if err == nil && !req.feasible() {
		// The distance can close by stepping outside the band, e.g. a total
		// below minPerBucket*bucketCount absorbed by buckets still under the
		// max. The caller still has to learn that the band was violated.
		err = errors.Wrapf(ErrInfeasible, "total %v is outside the band sum range [%v, %v]",
			req.Total, req.MinPerBucket*req.BucketCount, req.MaxPerBucket*req.BucketCount)
	}
	randutil.Shuffle(s.rng, buckets)
	return buckets, err
}

// sample draws bucketCount independent uniform weights in [0, total).
// The weights only express relative share sizes, never final values.
func (s *Splitter) sample(bucketCount, total int) []int {
	weights := make([]int, bucketCount)
	for i := range weights {
		weights[i] = s.rng.IntN(total)
	}
	return weights
}

// normalize rescales the raw weights so they sum to roughly total, truncating
// toward zero. When every weight is zero there is nothing to scale; the
// compensation pass raises the zeros afterwards.
func normalize(buckets []int, total int) {
	sum := 0
	for _, v := range buckets {
		sum += v
	}
	if sum == 0 {
		return
	}
	scale := float64(sum) / float64(total)
	for i, v := range buckets {
		buckets[i] = int(float64(v) / scale)
	}
}

// rebalance moves the remaining distance between the current sum and the
// total one unit at a time, round-robin across buckets that still have band
// headroom. A full pass that moves nothing means every bucket sits on the
// band edge; looping further would never terminate, so the remaining distance
// is reported as infeasible instead.
func rebalance(buckets []int, req Request) error {
	distance := req.Total - sum(buckets)
	for distance != 0 {
		changed := false
		for i := range buckets {
			if distance == 0 {
				break
			}
			switch {
			case distance > 0 && buckets[i] < req.MaxPerBucket:
				buckets[i]++
				distance--
				changed = true
			case distance < 0 && buckets[i] > req.MinPerBucket:
				buckets[i]--
				distance++
				changed = true
			}
		}
		if distance != 0 && !changed {
			return errors.Wrapf(ErrInfeasible, "%v unit(s) left with every bucket at the band edge", distance)
		}
	}
	return nil
}

func sum(buckets []int) int {
	total := 0
	for _, v := range buckets {
		total += v
	}
	return total
}
