package sim

import "math"

// NoData is returned for both mean and deviation when there are no counts.
const NoData = 99

// Aggregate returns the mean and sample standard deviation (n-1 denominator)
// of counts. An empty slice yields (NoData, NoData) and a single value yields
// (value, 0).
func Aggregate(counts []int) (mean, std float64) {
	switch len(counts) {
	case 0:
		return NoData, NoData
	case 1:
		return float64(counts[0]), 0
	}
	n := float64(len(counts))
	for _, c := range counts {
		mean += float64(c)
	}
	mean /= n
	for _, c := range counts {
		d := float64(c) - mean
		std += d * d
	}
	return mean, math.Sqrt(std / (n - 1))
}
