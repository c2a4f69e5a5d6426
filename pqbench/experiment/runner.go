package experiment

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/quntra/pqbench/pqbench/crypto"
	"github.com/quntra/pqbench/pqbench/results"
	"github.com/quntra/pqbench/pqbench/stats"
	"github.com/quntra/pqbench/pqbench/workload"
)

// rotationMaxAge forces a key rotation once the active key is seven days old.
// Benchmark runs never get near it on the real clock; the trigger exists
// for protocol fidelity and is exercised with a simulated clock in tests.
const rotationMaxAge = 7 * 24 * time.Hour

// Runner executes the sweep described by its Config.
type Runner struct {
	cfg   Config
	clock workload.Clock
	rng   *rand.Rand
}

// NewRunner creates a runner. The config is validated on Run.
func NewRunner(cfg Config) *Runner {
	clock := cfg.Clock
	if clock == nil {
		clock = workload.SystemClock()
	}
	return &Runner{
		cfg:   cfg,
		clock: clock,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Run executes every configuration of the sweep in order and returns one
// summary row per configuration. The first capability failure aborts the
// whole sweep; no partial rows are returned.
func (r *Runner) Run() ([]results.Row, error) {
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}

	total := len(r.cfg.Scenarios) * len(r.cfg.Patterns) * len(r.cfg.Agreements) * len(r.cfg.Ciphers)
	rows := make([]results.Row, 0, total)
	count := 0

	for _, scenario := range r.cfg.Scenarios {
		for _, pattern := range r.cfg.Patterns {
			for _, agreement := range r.cfg.Agreements {
				for _, kind := range r.cfg.Ciphers {
					count++
					r.logf("%d/%d. Configuration: %s + %s + %s + %s",
						count, total, scenario, pattern, agreement.Name(), kind)

					row, err := r.runConfiguration(scenario, pattern, agreement, kind)
					if err != nil {
						return nil, fmt.Errorf("experiment: %s/%s/%s/%s: %w",
							scenario, pattern, agreement.Name(), kind, err)
					}
					rows = append(rows, row)
				}
			}
		}
	}
	return rows, nil
}

// repResult accumulates the raw measurements of one repetition.
type repResult struct {
	kemTimeMS    float64
	cipherTimeMS float64
	kemBytes     int
	msgBytes     int
	rotations    int
	text         int
	image        int
	file         int
	system       int
}

func (r *Runner) runConfiguration(scenario workload.Scenario, pattern workload.Pattern,
	agreement crypto.KeyAgreement, kind crypto.CipherKind) (results.Row, error) {

	suite := crypto.NewCipherSuite(kind)
	reps := r.cfg.Repetitions

	kemTimes := make([]float64, 0, reps)
	cipherTimes := make([]float64, 0, reps)
	kemBWs := make([]float64, 0, reps)
	msgBWs := make([]float64, 0, reps)

	var text, image, file, system int
	var lastRotations int

	for rep := 0; rep < reps; rep++ {
		if rep%10 == 0 {
			r.logf("  Repetition %d/%d", rep+1, reps)
		}

		res, err := r.runRepetition(scenario, pattern, agreement, suite)
		if err != nil {
			return results.Row{}, err
		}

		kemTimes = append(kemTimes, res.kemTimeMS)
		cipherTimes = append(cipherTimes, res.cipherTimeMS)
		kemBWs = append(kemBWs, float64(res.kemBytes))
		msgBWs = append(msgBWs, float64(res.msgBytes))
		text += res.text
		image += res.image
		file += res.file
		system += res.system
		lastRotations = res.rotations

		if r.cfg.Archive != nil {
			sample := results.RawSample{
				Scenario:   scenario.String(),
				Pattern:    pattern.String(),
				Agreement:  agreement.Name(),
				Cipher:     kind.String(),
				Repetition: rep,
				KemTimeMS:  res.kemTimeMS,
				CipherMS:   res.cipherTimeMS,
				KemBytes:   res.kemBytes,
				MsgBytes:   res.msgBytes,
				Rotations:  res.rotations,
				Text:       res.text,
				Image:      res.image,
				File:       res.file,
				System:     res.system,
			}
			if err := r.cfg.Archive.Record(sample); err != nil {
				return results.Row{}, err
			}
		}
	}

	r.logf("  Analyzing normality and computing statistics...")
	kemStats := r.adaptive("KEM Times", kemTimes)
	cipherStats := r.adaptive("Cipher Times", cipherTimes)
	kemBWStats := r.adaptive("KEM Bandwidth", kemBWs)
	msgBWStats := r.adaptive("Message Bandwidth", msgBWs)

	n := float64(reps)
	return results.Row{
		Scenario:            scenario.String(),
		Pattern:             pattern.String(),
		Agreement:           agreement.Name(),
		Cipher:              kind.String(),
		MessageCount:        scenario.MessageCount(),
		MessagesPerRotation: scenario.RotationInterval(),
		Rotations:           lastRotations,
		KemTime:             kemStats,
		CipherTime:          cipherStats,
		KemBandwidth:        kemBWStats,
		MsgBandwidth:        msgBWStats,
		AvgText:             float64(text) / n,
		AvgImage:            float64(image) / n,
		AvgFile:             float64(file) / n,
		AvgSystem:           float64(system) / n,
	}, nil
}

// runRepetition drives one independent trial: a fresh workload, a fresh
// responder identity and the rotation-policy-driven measurement loop.
func (r *Runner) runRepetition(scenario workload.Scenario, pattern workload.Pattern,
	agreement crypto.KeyAgreement, suite crypto.CipherSuite) (repResult, error) {

	msgGen := workload.NewMessageGenerator(scenario, rand.New(rand.NewSource(r.rng.Int63())))
	trafficGen := workload.NewTrafficGenerator(pattern, rand.New(rand.NewSource(r.rng.Int63())), r.clock.Now())

	identity, err := crypto.NewResponderIdentity(agreement.Hybrid())
	if err != nil {
		return repResult{}, fmt.Errorf("responder identity: %w", err)
	}

	rotationInterval := scenario.RotationInterval()
	messageCount := scenario.MessageCount()

	var res repResult
	var key [crypto.KeySize]byte
	var kemTime time.Duration
	lastRotation := r.clock.Now()
	processed := 0

	// The loop elapsed time is the cipher-time sample. Rotations happen
	// inside this window, so their cost is counted in both metrics.
	loopStart := r.clock.Now()

	for processed < messageCount {
		now := r.clock.Now()
		if !trafficGen.ShouldSend(now) {
			continue
		}

		if processed%rotationInterval == 0 || now.Sub(lastRotation) >= rotationMaxAge {
			kemStart := r.clock.Now()
			secret, wire, err := agreement.Agree(identity)
			if err != nil {
				return repResult{}, fmt.Errorf("key agreement: %w", err)
			}
			if len(secret) < crypto.KeySize {
				return repResult{}, crypto.ErrShortSecret
			}
			copy(key[:], secret[:crypto.KeySize])
			kemTime += r.clock.Now().Sub(kemStart)
			res.rotations++
			res.kemBytes += wire
			lastRotation = now
		}

		msg := msgGen.GenerateMessage()
		switch msg.Type {
		case workload.ImageMessage:
			res.image++
		case workload.FileMessage:
			res.file++
		case workload.SystemMessage:
			res.system++
		default:
			// Voice folds into the text counter; the result schema has
			// no voice column.
			res.text++
		}

		ciphertext, nonceLen, err := suite.Seal(key[:], msg.Bytes())
		if err != nil {
			return repResult{}, fmt.Errorf("seal %s: %w", suite.Name(), err)
		}
		res.msgBytes += len(ciphertext) + nonceLen
		processed++
	}

	res.kemTimeMS = float64(kemTime) / float64(time.Millisecond)
	res.cipherTimeMS = float64(r.clock.Now().Sub(loopStart)) / float64(time.Millisecond)
	return res, nil
}

// adaptive reduces one metric and logs the decisions the pipeline took, the
// way the console protocol of the harness reports them.
func (r *Runner) adaptive(label string, data []float64) stats.Stats {
	s := stats.Adaptive(data)
	moderate := s.Outliers - s.ExtremeOutliers
	if s.Outliers > 0 {
		r.logf("  [OUTLIERS] %s: moderate: %d | extreme: %d", label, moderate, s.ExtremeOutliers)
	} else {
		r.logf("  [OUTLIERS] %s: none detected", label)
	}
	r.logf("  [NORMALITY] %s: normal=%v", label, s.IsNormal)
	r.logf("  [STATS] %s: %s, n=%d", label, s.StatType(), s.SampleSize)
	return s
}

func (r *Runner) logf(format string, args ...any) {
	if r.cfg.Quiet {
		return
	}
	log.Printf(format, args...)
}
