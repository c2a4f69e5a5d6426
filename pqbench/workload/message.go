package workload

// MessageType identifies the kind of payload a simulated message carries.
type MessageType int

const (
	TextMessage MessageType = iota
	ImageMessage
	FileMessage
	SystemMessage
	VoiceMessage
)

func (t MessageType) String() string {
	switch t {
	case TextMessage:
		return "Text"
	case ImageMessage:
		return "Image"
	case FileMessage:
		return "File"
	case SystemMessage:
		return "System"
	case VoiceMessage:
		return "Voice"
	default:
		return "Unknown"
	}
}

// Message is a single simulated message. Text and System messages carry a
// string payload; Image, File and Voice messages carry opaque bytes. Only the
// size matters to the measurements, not the content.
type Message struct {
	Type MessageType
	Text string
	Data []byte
}

// Bytes returns the payload as bytes for encryption. String payloads are
// returned as their UTF-8 encoding.
func (m Message) Bytes() []byte {
	switch m.Type {
	case TextMessage, SystemMessage:
		return []byte(m.Text)
	default:
		return m.Data
	}
}

// Size returns the payload size in bytes.
func (m Message) Size() int {
	switch m.Type {
	case TextMessage, SystemMessage:
		return len(m.Text)
	default:
		return len(m.Data)
	}
}
