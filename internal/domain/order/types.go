package order

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// Side identifies which participant of an order is acting.
type Side string

const (
	SideBuyer  Side = "buyer"
	SideSeller Side = "seller"
)
