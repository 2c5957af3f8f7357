package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mathRand "math/rand/v2"

	"github.com/tatterwing/lootkit/util/errors"
)

func RandNBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	_, err := rand.Read(bs)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

func RandBytes(bs []byte) (int, error) {
	n, err := rand.Read(bs)
	return n, errors.WithStack(err)
}

// NewRand returns a generator over a PCG source seeded from crypto/rand.
// The caller owns the generator; it is not safe for concurrent use.
func NewRand() *mathRand.Rand {
	var seed [16]byte
	// crypto/rand.Read does not fail on the supported platforms
	_, _ = rand.Read(seed[:])
	return mathRand.New(mathRand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:])))
}

// Shuffle permutes s in place with an unbiased Fisher-Yates shuffle.
func Shuffle[T any](rng *mathRand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
