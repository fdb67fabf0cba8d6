package listing

type Status string

const (
	StatusActive    Status = "active"
	StatusClaimed   Status = "claimed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string { return string(s) }

// MinutesPerDay bounds the meetup time window fields, which are stored as
// minutes since midnight.
const MinutesPerDay = 24 * 60
