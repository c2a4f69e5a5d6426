package results

import (
	"strconv"

	"github.com/quntra/pqbench/pqbench/stats"
)

// Row is one summary record: the reduced statistics of a single swept
// configuration. Column order is fixed; external consumers parse it
// positionally.
type Row struct {
	Scenario  string
	Pattern   string
	Agreement string
	Cipher    string

	MessageCount        int
	MessagesPerRotation int
	Rotations           int

	KemTime      stats.Stats // milliseconds
	CipherTime   stats.Stats // milliseconds, spans the whole message loop
	KemBandwidth stats.Stats // bytes
	MsgBandwidth stats.Stats // bytes

	AvgText   float64
	AvgImage  float64
	AvgFile   float64
	AvgSystem float64
}

var header = []string{
	"scenario", "traffic_pattern", "agreement", "cipher",
	"message_count", "messages_per_rotation", "rotations",
	"kem_time_mean", "kem_time_std", "kem_time_ci95",
	"cipher_time_mean", "cipher_time_std", "cipher_time_ci95",
	"kem_bw_mean", "kem_bw_std", "kem_bw_ci95",
	"msg_bw_mean", "msg_bw_std", "msg_bw_ci95",
	"avg_text", "avg_image", "avg_file", "avg_system",
	"kem_is_normal", "cipher_is_normal", "kem_bw_is_normal", "msg_bw_is_normal",
	"kem_stat_type", "cipher_stat_type", "kem_bw_stat_type", "msg_bw_stat_type",
	"kem_outliers", "cipher_outliers", "kem_bw_outliers", "msg_bw_outliers",
	"kem_extreme_outliers", "cipher_extreme_outliers",
	"kem_bw_extreme_outliers", "msg_bw_extreme_outliers",
	"kem_sample_size", "cipher_sample_size", "kem_bw_sample_size", "msg_bw_sample_size",
}

// Header returns the CSV column names in output order.
func Header() []string {
	return append([]string(nil), header...)
}

// Record renders the row as CSV fields in header order.
func (r Row) Record() []string {
	ms := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	bw := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	avg := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

	return []string{
		r.Scenario, r.Pattern, r.Agreement, r.Cipher,
		strconv.Itoa(r.MessageCount), strconv.Itoa(r.MessagesPerRotation), strconv.Itoa(r.Rotations),
		ms(r.KemTime.Center), ms(r.KemTime.Spread), ms(r.KemTime.CI95),
		ms(r.CipherTime.Center), ms(r.CipherTime.Spread), ms(r.CipherTime.CI95),
		bw(r.KemBandwidth.Center), bw(r.KemBandwidth.Spread), bw(r.KemBandwidth.CI95),
		bw(r.MsgBandwidth.Center), bw(r.MsgBandwidth.Spread), bw(r.MsgBandwidth.CI95),
		avg(r.AvgText), avg(r.AvgImage), avg(r.AvgFile), avg(r.AvgSystem),
		strconv.FormatBool(r.KemTime.IsNormal), strconv.FormatBool(r.CipherTime.IsNormal),
		strconv.FormatBool(r.KemBandwidth.IsNormal), strconv.FormatBool(r.MsgBandwidth.IsNormal),
		r.KemTime.StatType(), r.CipherTime.StatType(),
		r.KemBandwidth.StatType(), r.MsgBandwidth.StatType(),
		strconv.Itoa(r.KemTime.Outliers), strconv.Itoa(r.CipherTime.Outliers),
		strconv.Itoa(r.KemBandwidth.Outliers), strconv.Itoa(r.MsgBandwidth.Outliers),
		strconv.Itoa(r.KemTime.ExtremeOutliers), strconv.Itoa(r.CipherTime.ExtremeOutliers),
		strconv.Itoa(r.KemBandwidth.ExtremeOutliers), strconv.Itoa(r.MsgBandwidth.ExtremeOutliers),
		strconv.Itoa(r.KemTime.SampleSize), strconv.Itoa(r.CipherTime.SampleSize),
		strconv.Itoa(r.KemBandwidth.SampleSize), strconv.Itoa(r.MsgBandwidth.SampleSize),
	}
}
