package experiment

import (
	"errors"

	"github.com/quntra/pqbench/pqbench/crypto"
	"github.com/quntra/pqbench/pqbench/results"
	"github.com/quntra/pqbench/pqbench/workload"
)

var (
	ErrNoConfigurations = errors.New("experiment: sweep has no configurations")
	ErrBadRepetitions   = errors.New("experiment: repetitions must be positive")
)

// Config controls one sweep.
type Config struct {
	Repetitions int
	Scenarios   []workload.Scenario
	Patterns    []workload.Pattern
	Agreements  []crypto.KeyAgreement
	Ciphers     []crypto.CipherKind

	Seed  int64          // seeds the workload random sources
	Clock workload.Clock // nil means the system clock

	Archive *results.Archive // optional raw-sample sink
	Quiet   bool             // suppress progress logging
}

// DefaultRepetitions balances statistical robustness against runtime.
const DefaultRepetitions = 50

// DefaultConfig returns the full sweep: 4 scenarios x 5 patterns x
// 2 agreements x 3 ciphers, 50 repetitions each.
func DefaultConfig() Config {
	return Config{
		Repetitions: DefaultRepetitions,
		Scenarios:   workload.Scenarios(),
		Patterns:    workload.Patterns(),
		Agreements: []crypto.KeyAgreement{
			crypto.NewClassicalAgreement(),
			crypto.NewHybridAgreement(),
		},
		Ciphers: crypto.CipherKinds(),
		Seed:    1,
	}
}

func (c Config) validate() error {
	if c.Repetitions <= 0 {
		return ErrBadRepetitions
	}
	if len(c.Scenarios) == 0 || len(c.Patterns) == 0 ||
		len(c.Agreements) == 0 || len(c.Ciphers) == 0 {
		return ErrNoConfigurations
	}
	return nil
}
