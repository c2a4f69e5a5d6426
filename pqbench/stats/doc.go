// Package stats reduces raw per-repetition samples to trustworthy summary
// statistics.
//
// The pipeline is adaptive: IQR-based outlier detection first, then a
// moment-based normality check on the retained samples, then either
// parametric (mean, sample std, z-score CI) or robust (median, scaled MAD,
// percentile CI) reduction. All functions are pure and operate on a fixed
// input slice; quartiles and percentiles index the sorted data by truncation,
// not interpolation.
package stats
