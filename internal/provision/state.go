package provision

// State identifies a phase of the provisioning workflow. Control flows
// strictly forward; Deactivated is the sole terminal state once activation
// has succeeded.
type State int

const (
	StateIdle State = iota
	StateResetting
	StateActivated
	StateUpgrading
	StateInstalling
	StateDevInstalling
	StatePatching
	StateHookRegistering
	StateDeactivated
)

var stateNames = map[State]string{
	StateIdle:            "idle",
	StateResetting:       "resetting",
	StateActivated:       "activated",
	StateUpgrading:       "upgrading",
	StateInstalling:      "installing",
	StateDevInstalling:   "dev-installing",
	StatePatching:        "patching",
	StateHookRegistering: "hook-registering",
	StateDeactivated:     "deactivated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
