package results

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"

	"github.com/quntra/pqbench/pqbench/stats"
)

func sampleRow() Row {
	return Row{
		Scenario:            "SmallChat",
		Pattern:             "Constant",
		Agreement:           "Olm-Classical",
		Cipher:              "AES-GCM",
		MessageCount:        100,
		MessagesPerRotation: 100,
		Rotations:           1,
		KemTime:             stats.Stats{Center: 0.1234, Spread: 0.01, CI95: 0.002, IsNormal: true, SampleSize: 50},
		CipherTime:          stats.Stats{Center: 12.5, Spread: 1.5, CI95: 0.4, IsNormal: false, Outliers: 3, ExtremeOutliers: 1, SampleSize: 49},
		KemBandwidth:        stats.Stats{Center: 32, IsNormal: true, SampleSize: 50},
		MsgBandwidth:        stats.Stats{Center: 150000, Spread: 2000, CI95: 550, IsNormal: true, SampleSize: 50},
		AvgText:             85.2,
		AvgImage:            11.9,
		AvgFile:             0,
		AvgSystem:           0,
	}
}

func TestHeaderShape(t *testing.T) {
	h := Header()
	if len(h) != 43 {
		t.Fatalf("header has %d columns", len(h))
	}
	if h[0] != "scenario" || h[len(h)-1] != "msg_bw_sample_size" {
		t.Fatalf("header order wrong: first=%s last=%s", h[0], h[len(h)-1])
	}
}

func TestRecordMatchesHeader(t *testing.T) {
	rec := sampleRow().Record()
	if len(rec) != len(Header()) {
		t.Fatalf("record has %d fields, header has %d", len(rec), len(Header()))
	}
	if rec[7] != "0.1234" {
		t.Fatalf("kem_time_mean formatted as %q", rec[7])
	}
	if rec[19] != "85.2" {
		t.Fatalf("avg_text formatted as %q", rec[19])
	}
	// cipher stats were robust, kem stats parametric
	if rec[27] != "parametric" || rec[28] != "robust" {
		t.Fatalf("stat types %q/%q", rec[27], rec[28])
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := TimestampedPath(dir, time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC))
	if !strings.HasSuffix(path, "normality_check_20250714_093000.csv") {
		t.Fatalf("unexpected path %s", path)
	}

	if err := WriteCSV(path, []Row{sampleRow(), sampleRow()}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(records))
	}
	if records[0][0] != "scenario" || records[1][0] != "SmallChat" {
		t.Fatalf("csv content wrong")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir not created: %v", err)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.jsonl.lz4")

	a, err := NewArchive(path)
	if err != nil {
		t.Fatalf("NewArchive: %v", err)
	}
	want := RawSample{
		Scenario: "MediumGroup", Pattern: "Burst", Agreement: "Olm-Hybrid",
		Cipher: "ChaCha20", Repetition: 7, KemTimeMS: 1.25, CipherMS: 88.4,
		KemBytes: 2304, MsgBytes: 123456, Rotations: 5,
		Text: 170, Image: 45, File: 20, System: 15,
	}
	for i := 0; i < 3; i++ {
		s := want
		s.Repetition = i
		if err := a.Record(s); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	dec := json.NewDecoder(lz4.NewReader(f))
	var got []RawSample
	for dec.More() {
		var s RawSample
		if err := dec.Decode(&s); err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, s)
	}
	if len(got) != 3 {
		t.Fatalf("decoded %d samples, want 3", len(got))
	}
	if got[2].Repetition != 2 || got[0].Cipher != "ChaCha20" || got[1].KemBytes != 2304 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
