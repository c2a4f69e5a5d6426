package workload

import (
	"math"
	"math/rand"
	"time"
)

// Pattern selects a traffic cadence model.
type Pattern int

const (
	Constant  Pattern = iota // steady send every 100ms
	Burst                    // rapid bursts separated by pauses
	Periodic                 // sinusoidal activity cycles
	Random                   // fixed per-poll probability
	Realistic                // time-modulated probability mix
)

// Patterns lists every traffic pattern in sweep order.
func Patterns() []Pattern {
	return []Pattern{Constant, Burst, Periodic, Random, Realistic}
}

func (p Pattern) String() string {
	switch p {
	case Constant:
		return "Constant"
	case Burst:
		return "Burst"
	case Periodic:
		return "Periodic"
	case Random:
		return "Random"
	case Realistic:
		return "Realistic"
	default:
		return "Unknown"
	}
}

const (
	constantInterval = 100 * time.Millisecond
	burstPause       = 1000 * time.Millisecond
	burstMin         = 5
	burstMax         = 11 // exclusive
	periodicRate     = 0.1
	periodicCap      = 0.3
	randomProb       = 0.3
	realisticBase    = 0.2
	realisticAmp     = 0.5
)

// TrafficGenerator decides, at each polled timestamp, whether a message
// should be emitted now. It is a pure cadence predicate on a simulated
// clock: it never blocks and never sleeps.
type TrafficGenerator struct {
	pattern  Pattern
	rng      *rand.Rand
	lastSend time.Time
	burstN   int
	burstLen int
	phase    float64
}

// NewTrafficGenerator creates a generator for the given pattern. start is the
// clock reading at construction time and seeds the cadence state.
func NewTrafficGenerator(pattern Pattern, rng *rand.Rand, start time.Time) *TrafficGenerator {
	g := &TrafficGenerator{pattern: pattern, rng: rng, lastSend: start}
	g.burstLen = burstMin + rng.Intn(burstMax-burstMin)
	return g
}

// ShouldSend reports whether a message should be emitted at now.
func (g *TrafficGenerator) ShouldSend(now time.Time) bool {
	switch g.pattern {
	case Constant:
		return now.Sub(g.lastSend) >= constantInterval
	case Burst:
		// Emit the whole burst as fast as polled, then hold until the
		// pause elapses before starting the next one.
		if g.burstN < g.burstLen {
			g.burstN++
			return true
		}
		if now.Sub(g.lastSend) >= burstPause {
			g.burstN = 0
			g.burstLen = burstMin + g.rng.Intn(burstMax-burstMin)
			g.lastSend = now
			return true
		}
		return false
	case Periodic:
		elapsed := now.Sub(g.lastSend).Seconds()
		g.phase += elapsed * periodicRate
		probability := (math.Sin(g.phase) + 1) / 2
		send := g.rng.Float64() < probability*periodicCap
		if send {
			g.lastSend = now
		}
		return send
	case Random:
		send := g.rng.Float64() < randomProb
		if send {
			g.lastSend = now
		}
		return send
	default: // Realistic
		elapsed := now.Sub(g.lastSend).Seconds()
		timeFactor := math.Sin(elapsed * periodicRate)
		probability := realisticBase * (1 + timeFactor*realisticAmp)
		send := g.rng.Float64() < probability
		if send {
			g.lastSend = now
		}
		return send
	}
}
