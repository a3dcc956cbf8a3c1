package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type transition int

const (
	denied transition = iota
	allowed
	unchanged
	// confirmed -> cancelled needs an explicit override
	overrideOnly
)

var transitions = map[Status]map[Status]transition{
	StatusPending: {
		StatusPending:   unchanged,
		StatusConfirmed: allowed,
		StatusCancelled: allowed,
	},
	StatusConfirmed: {
		StatusPending:   denied,
		StatusConfirmed: unchanged,
		StatusCancelled: overrideOnly,
	},
	StatusCancelled: {
		StatusPending:   denied,
		StatusConfirmed: denied,
		StatusCancelled: unchanged,
	},
}

// CheckTransition consults the status table shared by every entry point.
// changed is false when from == to, which callers treat as a no-op.
func CheckTransition(from, to Status, canCancelConfirmed bool) (changed bool, err error) {
	if !to.IsValid() {
		return false, ErrInvalidStatus
	}
	switch transitions[from][to] {
	case allowed:
		return true, nil
	case unchanged:
		return false, nil
	case overrideOnly:
		if canCancelConfirmed {
			return true, nil
		}
		return false, ErrAlreadyConfirmed
	default:
		return false, ErrInvalidTransition
	}
}
