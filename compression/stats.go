package compression

import (
	"math"
)

// Entropy returns the Shannon entropy of data in bits per byte (0..8).
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	n := float64(len(data))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// BlockSize picks the copy buffer size for an input of the given size.
func BlockSize(size int64) int {
	switch {
	case size < 1<<20:
		return 8 * 1024
	case size < 10<<20:
		return 64 * 1024
	default:
		return 128 * 1024
	}
}
