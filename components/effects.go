package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FlashData tracks the damage flash. Remaining counts down by the tick
// duration; the flash ends when it reaches zero.
type FlashData struct {
	Active    bool
	Remaining time.Duration
}

// Start turns the flash on for d.
func (f *FlashData) Start(d time.Duration) {
	f.Active = true
	f.Remaining = d
}

// Advance counts the flash down by dt.
func (f *FlashData) Advance(dt time.Duration) {
	if !f.Active {
		return
	}
	f.Remaining -= dt
	if f.Remaining <= 0 {
		f.Active = false
		f.Remaining = 0
	}
}

var Flash = donburi.NewComponentType[FlashData]()
