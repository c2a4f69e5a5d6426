package workload

// Scenario selects a usage profile for a simulated room or channel. Each
// scenario fixes the key-rotation interval, the number of messages per trial
// and the message-type mix.
type Scenario int

const (
	SmallChat     Scenario = iota // small P2P room, mostly text
	MediumGroup                   // mid-size group with active media sharing
	LargeChannel                  // large channel with structured content
	SystemChannel                 // automation-heavy system channel
)

// Scenarios lists every scenario in sweep order.
func Scenarios() []Scenario {
	return []Scenario{SmallChat, MediumGroup, LargeChannel, SystemChannel}
}

func (s Scenario) String() string {
	switch s {
	case SmallChat:
		return "SmallChat"
	case MediumGroup:
		return "MediumGroup"
	case LargeChannel:
		return "LargeChannel"
	case SystemChannel:
		return "SystemChannel"
	default:
		return "Unknown"
	}
}

// RotationInterval returns the number of messages between mandatory key
// rotations for the scenario.
func (s Scenario) RotationInterval() int {
	switch s {
	case SmallChat:
		return 100
	case MediumGroup:
		return 50
	case LargeChannel:
		return 25
	case SystemChannel:
		return 10
	default:
		return 100
	}
}

// MessageCount returns how many messages one trial of the scenario processes.
func (s Scenario) MessageCount() int {
	switch s {
	case SmallChat:
		return 100
	case MediumGroup:
		return 250
	case LargeChannel:
		return 500
	case SystemChannel:
		return 1000
	default:
		return 100
	}
}
