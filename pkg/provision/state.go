package provision

// State is a step of the provisioning pipeline
type State int

const (
	StateIdle State = iota
	StateTemplateLoaded
	StateAuthResolved
	StateFilled
	StateWritten
	StateHardened
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:           "idle",
	StateTemplateLoaded: "template-loaded",
	StateAuthResolved:   "auth-resolved",
	StateFilled:         "filled",
	StateWritten:        "written",
	StateHardened:       "hardened",
	StateDone:           "done",
	StateFailed:         "failed",
}

// String returns the string representation of the state
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
