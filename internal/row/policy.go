package row

import "github.com/llehouerou/songlist/internal/ui/action"

// Policy decides the flag value a completion commits.
type Policy int

const (
	// PolicyNegate commits the negation of the value observed at dispatch,
	// whatever the outcome.
	PolicyNegate Policy = iota
	// PolicyConfirm commits the value reported by the backend on success
	// and restores the value observed at dispatch on failure.
	PolicyConfirm
)

// ParsePolicy maps a config value to a Policy. Unknown values yield PolicyNegate.
func ParsePolicy(s string) Policy {
	if s == "confirm" {
		return PolicyConfirm
	}
	return PolicyNegate
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if p == PolicyConfirm {
		return "confirm"
	}
	return "negate"
}

func (p Policy) commit(prev bool, o action.Outcome) bool {
	if p == PolicyConfirm {
		if o.Err != nil {
			return prev
		}
		return o.Liked
	}
	return !prev
}
