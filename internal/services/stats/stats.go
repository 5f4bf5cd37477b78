package stats

import "math"

// Pearson computes the Pearson correlation coefficient of two equal-length
// series. Returns NaN when either side has zero variance or fewer than two
// points.
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

// CorrelationMatrix computes pairwise Pearson correlations for the named
// columns. Rows with a missing value in either column of a pair are
// excluded from that pair.
func CorrelationMatrix(columns []string, rows []map[string]float64) [][]float64 {
	out := make([][]float64, len(columns))
	for i := range columns {
		out[i] = make([]float64, len(columns))
		out[i][i] = 1
	}

	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			var xs, ys []float64
			for _, row := range rows {
				x, okX := row[columns[i]]
				y, okY := row[columns[j]]
				if okX && okY {
					xs = append(xs, x)
					ys = append(ys, y)
				}
			}
			r := Pearson(xs, ys)
			out[i][j] = r
			out[j][i] = r
		}
	}
	return out
}
