package entity

// EventConfigID is the fixed document key of the process-wide event pool.
const EventConfigID = "event_mode"

// EventConfig is the singleton capped consumable allowance for a time-boxed
// event. RemainingCups stays within [0, MaxCups]; configuring a new event
// overwrites any in-progress pool.
type EventConfig struct {
	ID            string `json:"id" firestore:"id"`
	MaxCups       int    `json:"maxCups" firestore:"maxCups"`
	RemainingCups int    `json:"remainingCups" firestore:"remainingCups"`
	IsActive      bool   `json:"isActive" firestore:"isActive"`
}

// PreviewRemaining is the pool headroom after hypothetically deducting
// cartQty cups. Exposed for UI display; not authoritative.
func (c *EventConfig) PreviewRemaining(cartQty int) int {
	remaining := c.RemainingCups - cartQty
	if remaining < 0 {
		return 0
	}

	return remaining
}
