package workload

import (
	"math/rand"
	"strings"
)

// MessageGenerator produces messages whose type and size follow the empirical
// distribution of the configured scenario. Each call to GenerateMessage is a
// single pseudo-random draw; the generator keeps no state beyond its random
// source.
type MessageGenerator struct {
	scenario Scenario
	rng      *rand.Rand
}

// NewMessageGenerator creates a generator for the given scenario. The random
// source is owned by the caller and may be seeded for reproducibility.
func NewMessageGenerator(scenario Scenario, rng *rand.Rand) *MessageGenerator {
	return &MessageGenerator{scenario: scenario, rng: rng}
}

// GenerateMessage draws one message according to the scenario's type mix.
func (g *MessageGenerator) GenerateMessage() Message {
	v := g.rng.Float64()
	switch g.scenario {
	case SmallChat:
		// 85% text, 12% image, 3% voice
		switch {
		case v < 0.85:
			return g.textMessage()
		case v < 0.97:
			return g.imageMessage()
		default:
			return g.voiceMessage()
		}
	case MediumGroup:
		// 70% text, 18% image, 7% file, 5% voice
		switch {
		case v < 0.70:
			return g.textMessage()
		case v < 0.88:
			return g.imageMessage()
		case v < 0.95:
			return g.fileMessage()
		default:
			return g.voiceMessage()
		}
	case LargeChannel:
		// 60% text, 22% image, 8% file, 10% system
		switch {
		case v < 0.60:
			return g.textMessage()
		case v < 0.82:
			return g.imageMessage()
		case v < 0.90:
			return g.fileMessage()
		default:
			return g.systemMessage()
		}
	default: // SystemChannel
		// 25% text, 50% system, 15% file, 10% image
		switch {
		case v < 0.25:
			return g.textMessage()
		case v < 0.75:
			return g.systemMessage()
		case v < 0.90:
			return g.fileMessage()
		default:
			return g.imageMessage()
		}
	}
}

// sizeBucket pairs a probability mass with a target byte count.
type sizeBucket struct {
	prob float64
	size int
}

// pickSize draws from a cumulative size distribution, falling back to def if
// the probabilities do not sum to 1 exactly.
func (g *MessageGenerator) pickSize(buckets []sizeBucket, def int) int {
	v := g.rng.Float64()
	cumulative := 0.0
	for _, b := range buckets {
		cumulative += b.prob
		if v < cumulative {
			return b.size
		}
	}
	return def
}

var textLengths = []sizeBucket{
	{0.45, 15},  // very short ("ok", emojis)
	{0.35, 50},  // short replies
	{0.15, 150}, // medium explanations
	{0.04, 300}, // long descriptions
	{0.01, 500}, // very long texts
}

// vocabulary typical of instant messaging traffic.
var words = []string{
	"hello", "hi", "ok", "yes", "no", "thanks", "please", "sure", "maybe", "great",
	"work", "meeting", "project", "team", "update", "status", "done", "working", "help",
	"message", "chat", "call", "video", "file", "document", "share", "send", "receive",
	"crypto", "security", "privacy", "encryption", "key", "algorithm", "protocol",
	"test", "debug", "error", "fix", "issue", "problem", "solution", "check",
}

func (g *MessageGenerator) textMessage() Message {
	target := g.pickSize(textLengths, 50)

	// ~6 chars per average word
	wordCount := target / 6
	if wordCount < 1 {
		wordCount = 1
	}
	var sb strings.Builder
	for i := 0; i < wordCount; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(words[g.rng.Intn(len(words))])
	}
	return Message{Type: TextMessage, Text: sb.String()}
}

var imageSizes = []sizeBucket{
	{0.40, 15_000},    // thumbnails
	{0.35, 50_000},    // compressed photos
	{0.20, 150_000},   // high quality photos
	{0.04, 500_000},   // screenshots, scans
	{0.01, 1_000_000}, // originals
}

func (g *MessageGenerator) imageMessage() Message {
	return Message{Type: ImageMessage, Data: g.randomBytes(g.pickSize(imageSizes, 50_000))}
}

var fileSizes = []sizeBucket{
	{0.30, 10_000},     // text documents, JSON
	{0.25, 100_000},    // PDFs, spreadsheets
	{0.20, 500_000},    // presentations, code
	{0.15, 2_000_000},  // short videos, archives
	{0.10, 10_000_000}, // videos, backups
}

func (g *MessageGenerator) fileMessage() Message {
	return Message{Type: FileMessage, Data: g.randomBytes(g.pickSize(fileSizes, 100_000))}
}

// systemEvents is a catalog of membership, room, security and system
// notifications in the style of Matrix/Element.
var systemEvents = []string{
	"User joined the room",
	"User left the room",
	"User changed their display name",
	"User changed their avatar",
	"User was invited to the room",
	"User was kicked from the room",
	"Room topic changed",
	"Room name changed",
	"Room settings updated",
	"Room was made public",
	"Room was made private",
	"Message was deleted",
	"Message was edited",
	"End-to-end encryption enabled",
	"Device verification completed",
	"Backup key verification required",
	"New device detected",
	"Keys rotated for security",
	"Server maintenance scheduled",
	"Sync completed",
	"Connection restored",
	"Rate limit exceeded",
	"Upload completed",
	"Download completed",
}

func (g *MessageGenerator) systemMessage() Message {
	return Message{Type: SystemMessage, Text: systemEvents[g.rng.Intn(len(systemEvents))]}
}

var voiceDurations = []sizeBucket{
	{0.50, 3},  // seconds
	{0.30, 8},
	{0.15, 15},
	{0.04, 30},
	{0.01, 60},
}

// voiceBytesPerSecond approximates a compressed audio codec (Opus, AAC).
const voiceBytesPerSecond = 6_000

func (g *MessageGenerator) voiceMessage() Message {
	seconds := g.pickSize(voiceDurations, 8)
	return Message{Type: VoiceMessage, Data: g.randomBytes(seconds * voiceBytesPerSecond)}
}

func (g *MessageGenerator) randomBytes(n int) []byte {
	b := make([]byte, n)
	g.rng.Read(b)
	return b
}
