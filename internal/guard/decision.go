package guard

// State of a single guard check.
type State int

const (
	Checking State = iota
	Allowed
	Denied
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Decision is the terminal outcome of a check. Redirect is set only when
// State is Denied.
type Decision struct {
	State    State
	Redirect string
}

func allow() Decision {
	return Decision{State: Allowed}
}

func deny(redirect string) Decision {
	return Decision{State: Denied, Redirect: redirect}
}
