package stats

import (
	"math"
	"sort"
)

// Stats is the summary produced for one metric of one configuration.
// Center and Spread are mean and sample standard deviation when the data
// passed the normality check, median and scaled MAD otherwise.
type Stats struct {
	Center          float64
	Spread          float64
	CI95            float64
	IsNormal        bool
	Outliers        int // moderate + extreme, counted on the original array
	ExtremeOutliers int
	SampleSize      int // size of the array actually analyzed
}

// StatType names the reduction branch that produced the Stats.
func (s Stats) StatType() string {
	if s.IsNormal {
		return "parametric"
	}
	return "robust"
}

// outlier bound multipliers for the IQR method.
const (
	moderateFence = 1.5
	extremeFence  = 3.0
)

// DetectOutliers classifies each sample by the IQR method. It returns the
// indices of moderate and extreme outliers in the original array and the
// values retained inside the moderate fences. Samples with fewer than four
// values are returned untouched.
//
// Quartiles index the sorted data by truncation: q1 = sorted[int(0.25n)],
// q3 = sorted[int(0.75n)].
func DetectOutliers(data []float64) (moderate, extreme []int, cleaned []float64) {
	n := len(data)
	if n < 4 {
		return nil, nil, append([]float64(nil), data...)
	}

	sorted := sortedCopy(data)
	q1 := sorted[int(float64(n)*0.25)]
	q3 := sorted[int(float64(n)*0.75)]
	iqr := q3 - q1

	lower := q1 - moderateFence*iqr
	upper := q3 + moderateFence*iqr
	extremeLower := q1 - extremeFence*iqr
	extremeUpper := q3 + extremeFence*iqr

	for i, v := range data {
		switch {
		case v < extremeLower || v > extremeUpper:
			extreme = append(extreme, i)
		case v < lower || v > upper:
			moderate = append(moderate, i)
		default:
			cleaned = append(cleaned, v)
		}
	}
	return moderate, extreme, cleaned
}

// IsNormal reports whether the data is plausibly normally distributed, judged
// by sample skewness and excess kurtosis: |skewness| < 2 and |kurtosis| < 7.
// Degenerate inputs (n < 3, zero variance) assume normality.
func IsNormal(data []float64) bool {
	n := len(data)
	if n < 3 {
		return true
	}

	m := mean(data)
	std := sampleStdDev(data, m)
	if std == 0 {
		return true
	}

	// Population-style moment averages over Bessel-corrected std.
	var skewness, kurtosis float64
	for _, v := range data {
		z := (v - m) / std
		skewness += z * z * z
		kurtosis += z * z * z * z
	}
	skewness /= float64(n)
	kurtosis = kurtosis/float64(n) - 3

	return math.Abs(skewness) < 2.0 && math.Abs(kurtosis) < 7.0
}

// Adaptive runs the full reduction pipeline on one sample array. Extreme
// outliers, when present, are dropped before analysis; the reported outlier
// counts always refer to the original array.
func Adaptive(data []float64) Stats {
	moderate, extreme, cleaned := DetectOutliers(data)

	analyzed := data
	if len(extreme) > 0 {
		analyzed = cleaned
	}

	outliers := len(moderate) + len(extreme)
	if IsNormal(analyzed) {
		return parametric(analyzed, outliers, len(extreme))
	}
	return robust(analyzed, outliers, len(extreme))
}

func parametric(data []float64, outliers, extremeOutliers int) Stats {
	s := Stats{
		IsNormal:        true,
		Outliers:        outliers,
		ExtremeOutliers: extremeOutliers,
		SampleSize:      len(data),
	}
	n := len(data)
	if n == 0 {
		return s
	}
	s.Center = mean(data)
	if n < 2 {
		return s
	}
	s.Spread = sampleStdDev(data, s.Center)
	s.CI95 = 1.96 * s.Spread / math.Sqrt(float64(n))
	return s
}

// madScale makes the MAD comparable to a standard deviation under normality.
const madScale = 1.4826

func robust(data []float64, outliers, extremeOutliers int) Stats {
	s := Stats{
		Outliers:        outliers,
		ExtremeOutliers: extremeOutliers,
		SampleSize:      len(data),
	}
	n := len(data)
	if n == 0 {
		return s
	}

	sorted := sortedCopy(data)
	med := medianSorted(sorted)
	s.Center = med

	deviations := make([]float64, n)
	for i, v := range data {
		deviations[i] = math.Abs(v - med)
	}
	sort.Float64s(deviations)
	s.Spread = medianSorted(deviations) * madScale

	p2_5 := sorted[percentileIndex(n, 0.025)]
	p97_5 := sorted[percentileIndex(n, 0.975)]
	s.CI95 = (p97_5 - p2_5) / 2
	return s
}

func percentileIndex(n int, p float64) int {
	idx := int(float64(n) * p)
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

func mean(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// sampleStdDev is the Bessel-corrected standard deviation.
func sampleStdDev(data []float64, mean float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}
	var ss float64
	for _, v := range data {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func sortedCopy(data []float64) []float64 {
	c := append([]float64(nil), data...)
	sort.Float64s(c)
	return c
}
