package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"
)

// RawSample is the unreduced measurement of a single repetition. The archive
// keeps these so the external analysis tooling can run its own hypothesis
// tests on the raw distributions instead of the summarized ones.
type RawSample struct {
	Scenario   string  `json:"scenario"`
	Pattern    string  `json:"traffic_pattern"`
	Agreement  string  `json:"agreement"`
	Cipher     string  `json:"cipher"`
	Repetition int     `json:"repetition"`
	KemTimeMS  float64 `json:"kem_time_ms"`
	CipherMS   float64 `json:"cipher_time_ms"`
	KemBytes   int     `json:"kem_bandwidth_bytes"`
	MsgBytes   int     `json:"msg_bandwidth_bytes"`
	Rotations  int     `json:"rotations"`
	Text       int     `json:"text_msgs"`
	Image      int     `json:"image_msgs"`
	File       int     `json:"file_msgs"`
	System     int     `json:"system_msgs"`
}

// Archive streams raw samples as lz4-compressed JSON lines. It is not safe
// for concurrent use; the sweep is single-threaded.
type Archive struct {
	f   *os.File
	lz  *lz4.Writer
	enc *json.Encoder
}

// NewArchive creates (or truncates) the archive at path.
func NewArchive(path string) (*Archive, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("results: create archive %s: %w", path, err)
	}
	lz := lz4.NewWriter(f)
	// Raw samples are small and highly repetitive; the fast level is enough.
	_ = lz.Apply(lz4.CompressionLevelOption(lz4.Fast))
	return &Archive{f: f, lz: lz, enc: json.NewEncoder(lz)}, nil
}

// Record appends one sample to the archive.
func (a *Archive) Record(s RawSample) error {
	if err := a.enc.Encode(s); err != nil {
		return fmt.Errorf("results: archive sample: %w", err)
	}
	return nil
}

// Close flushes the compressor and closes the underlying file.
func (a *Archive) Close() error {
	if err := a.lz.Close(); err != nil {
		a.f.Close()
		return fmt.Errorf("results: close archive: %w", err)
	}
	return a.f.Close()
}
