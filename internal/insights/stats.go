package insights

import "math"

// sum reduces a numeric sequence to its total.
func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// average returns the arithmetic mean, or 0 for an empty sequence.
func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

// stdDev returns the population standard deviation (divide by N, not N-1),
// or 0 for an empty sequence.
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := average(values)
	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(len(values)))
}

// linearSlope fits y = a + b*x over x = 0, 1, 2, ... and returns b.
// Returns 0 for fewer than two points or a degenerate fit.
func linearSlope(points []float64) float64 {
	n := float64(len(points))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range points {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
