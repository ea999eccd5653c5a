package tier

import (
	"errors"
	"fmt"
)

// Tier is a subscription level.
type Tier string

const (
	Free     Tier = "free"
	Pro      Tier = "pro"
	Business Tier = "business"
)

// Resource is a quota-limited thing an owner can create.
type Resource string

const (
	Folders      Resource = "folders"
	DynamicCodes Resource = "dynamic_codes"
)

// Unlimited marks a resource without a ceiling.
const Unlimited = -1

var (
	ErrUnavailable  = errors.New("not available at this tier")
	ErrLimitReached = errors.New("limit reached")
	ErrUnknownTier  = errors.New("unknown tier")
)

// Limits holds per-resource ceilings. A value of 0 locks the feature.
type Limits struct {
	Folders      int `json:"folders"`
	DynamicCodes int `json:"dynamic_codes"`
}

// table is read-only after init; it is shared between requests without locking.
var table = map[Tier]Limits{
	Free:     {Folders: 0, DynamicCodes: 0},
	Pro:      {Folders: 5, DynamicCodes: 50},
	Business: {Folders: Unlimited, DynamicCodes: Unlimited},
}

// LimitError is returned when the gate denies an operation.
type LimitError struct {
	Tier     Tier
	Resource Resource
	Limit    int
	reason   error
}

func (e *LimitError) Error() string {
	if errors.Is(e.reason, ErrUnavailable) {
		return fmt.Sprintf("%s are not available on the %s plan", e.Resource.DisplayName(), e.Tier)
	}
	return fmt.Sprintf("you've reached your %s limit (%d) on the %s plan", e.Resource.DisplayName(), e.Limit, e.Tier)
}

func (e *LimitError) Unwrap() error {
	return e.reason
}

// Parse maps a stored tier label to a Tier. An empty label means free.
func Parse(label string) (Tier, error) {
	if label == "" {
		return Free, nil
	}
	t := Tier(label)
	if _, ok := table[t]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTier, label)
	}
	return t, nil
}

// LimitsFor returns the limits of t. Unknown tiers get the free limits.
func LimitsFor(t Tier) Limits {
	if l, ok := table[t]; ok {
		return l
	}
	return table[Free]
}

// Limit returns the ceiling of resource r for tier t.
func Limit(t Tier, r Resource) int {
	l := LimitsFor(t)
	switch r {
	case Folders:
		return l.Folders
	case DynamicCodes:
		return l.DynamicCodes
	default:
		return 0
	}
}

// Check decides whether an owner on tier t that already has currentCount of r may create one more.
func Check(t Tier, r Resource, currentCount int) error {
	limit := Limit(t, r)
	switch {
	case limit == Unlimited:
		return nil
	case limit == 0:
		return &LimitError{Tier: t, Resource: r, Limit: limit, reason: ErrUnavailable}
	case currentCount >= limit:
		return &LimitError{Tier: t, Resource: r, Limit: limit, reason: ErrLimitReached}
	}
	return nil
}

// Available reports whether r is usable at all on tier t.
func Available(t Tier, r Resource) bool {
	return Limit(t, r) != 0
}

func (r Resource) DisplayName() string {
	switch r {
	case Folders:
		return "folders"
	case DynamicCodes:
		return "dynamic QR codes"
	default:
		return string(r)
	}
}

// Require is like Available but returns the gate error, for operations that
// use a resource without creating one.
func Require(t Tier, r Resource) error {
	if !Available(t, r) {
		return &LimitError{Tier: t, Resource: r, Limit: 0, reason: ErrUnavailable}
	}
	return nil
}
