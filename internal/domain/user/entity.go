package user

// DefaultStars is the neutral-positive prior every user starts from before
// receiving any rating.
const DefaultStars = 5.0

// NextStars folds one incoming star rating into a running weighted average
// where each of the prior ratings carries weight 1:
//
//	(completed*current + incoming) / (completed + 1)
//
// A zero-or-negative completed count means the incoming rating stands alone.
func NextStars(current float64, completed int64, incoming int) float64 {
	if completed <= 0 {
		return float64(incoming)
	}
	return (float64(completed)*current + float64(incoming)) / float64(completed+1)
}

// StarsOrDefault substitutes the prior for users that have never been rated.
func StarsOrDefault(stars *float64) float64 {
	if stars == nil {
		return DefaultStars
	}
	return *stars
}

// StatsDelta accumulates per-user statistic increments during a batch run.
// Deltas are applied as commutative increments, never absolute writes, so
// they compose with concurrent writers to the same user row.
type StatsDelta struct {
	Transactions     int64
	MoneySavedCents  int64
	MoneyEarnedCents int64
}

func (d StatsDelta) Add(other StatsDelta) StatsDelta {
	return StatsDelta{
		Transactions:     d.Transactions + other.Transactions,
		MoneySavedCents:  d.MoneySavedCents + other.MoneySavedCents,
		MoneyEarnedCents: d.MoneyEarnedCents + other.MoneyEarnedCents,
	}
}

func (d StatsDelta) IsZero() bool {
	return d.Transactions == 0 && d.MoneySavedCents == 0 && d.MoneyEarnedCents == 0
}
