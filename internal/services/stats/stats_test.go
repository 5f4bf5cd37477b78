package stats

import (
	"math"
	"testing"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 6, 8}
	if got := Pearson(xs, ys); math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected 1, got %v", got)
	}

	neg := []float64{8, 6, 4, 2}
	if got := Pearson(xs, neg); math.Abs(got+1) > 1e-12 {
		t.Fatalf("expected -1, got %v", got)
	}
}

func TestPearsonDegenerate(t *testing.T) {
	if got := Pearson([]float64{1, 1, 1}, []float64{1, 2, 3}); !math.IsNaN(got) {
		t.Fatalf("zero variance should be NaN, got %v", got)
	}
	if got := Pearson([]float64{1}, []float64{2}); !math.IsNaN(got) {
		t.Fatalf("single point should be NaN, got %v", got)
	}
	if got := Pearson([]float64{1, 2}, []float64{1}); !math.IsNaN(got) {
		t.Fatalf("length mismatch should be NaN, got %v", got)
	}
}

func TestCorrelationMatrixSkipsMissing(t *testing.T) {
	cols := []string{"a", "b"}
	rows := []map[string]float64{
		{"a": 1, "b": 2},
		{"a": 2}, // b missing: excluded from the a/b pair
		{"a": 3, "b": 6},
		{"a": 4, "b": 8},
	}
	m := CorrelationMatrix(cols, rows)
	if m[0][0] != 1 || m[1][1] != 1 {
		t.Fatalf("diagonal must be 1: %v", m)
	}
	if math.Abs(m[0][1]-1) > 1e-12 {
		t.Fatalf("expected 1, got %v", m[0][1])
	}
	if m[0][1] != m[1][0] {
		t.Fatalf("matrix must be symmetric")
	}
}
