package entity

// Mode is an operating mode compared by the agent efficiency simulator.
type Mode string

const (
	ModeManual         Mode = "manual"
	ModeAssistive      Mode = "assistive"
	ModeSemiAutonomous Mode = "semi_autonomous"
	ModeAutonomous     Mode = "autonomous"
)

// Modes lists the modes in comparison order. Manual is the baseline.
var Modes = []Mode{ModeManual, ModeAssistive, ModeSemiAutonomous, ModeAutonomous}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeManual:
		return "Manual (today)"
	case ModeAssistive:
		return "Assistive (stage 1)"
	case ModeSemiAutonomous:
		return "Semi-Autonomous (stage 2)"
	case ModeAutonomous:
		return "Autonomous (target)"
	default:
		return string(m)
	}
}
