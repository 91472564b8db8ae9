package booking

// Status is the lifecycle state of a booking. The three terminal statuses
// have no outgoing transitions.
type Status string

const (
	StatusOptionPending   Status = "option_pending"
	StatusOptionConfirmed Status = "option_confirmed"
	StatusFixPending      Status = "fix_pending"
	StatusFixConfirmed    Status = "fix_confirmed"
	StatusDeclined        Status = "declined"
	StatusWithdrawn       Status = "withdrawn"
	StatusCancelled       Status = "cancelled"
)

// transitions is the full directed state graph. Anything not listed here is
// illegal, including every move out of a terminal status.
var transitions = map[Status][]Status{
	StatusOptionPending:   {StatusOptionConfirmed, StatusDeclined, StatusWithdrawn},
	StatusFixPending:      {StatusFixConfirmed, StatusDeclined, StatusWithdrawn},
	StatusOptionConfirmed: {StatusFixConfirmed, StatusCancelled},
	StatusFixConfirmed:    {StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOptionPending, StatusOptionConfirmed, StatusFixPending,
		StatusFixConfirmed, StatusDeclined, StatusWithdrawn, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusWithdrawn, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsPending() bool {
	return s == StatusOptionPending || s == StatusFixPending
}

func (s Status) IsConfirmed() bool {
	return s == StatusOptionConfirmed || s == StatusFixConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// RequestType selects the booking flavor at creation time.
type RequestType string

const (
	RequestOption RequestType = "option"
	RequestFix    RequestType = "fix"
)

func (t RequestType) IsValid() bool {
	return t == RequestOption || t == RequestFix
}

// InitialStatus maps a request type to its pending status.
func (t RequestType) InitialStatus() Status {
	if t == RequestFix {
		return StatusFixPending
	}
	return StatusOptionPending
}

// Role identifies which side of a booking acted or is addressed.
type Role string

const (
	RoleProvider  Role = "provider"
	RoleRequester Role = "requester"
)

func (r Role) IsValid() bool {
	return r == RoleProvider || r == RoleRequester
}

// Other returns the opposite side.
func (r Role) Other() Role {
	if r == RoleProvider {
		return RoleRequester
	}
	return RoleProvider
}
