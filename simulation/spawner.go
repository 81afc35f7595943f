package simulation

import (
	"math"

	"github.com/automoto/bigfish/config"
)

// Interval is the number of ticks between spawn events at the given player
// level: max(MinInterval, BaseInterval - level*IntervalPerLevel).
func Interval(level int) int {
	return max(config.Spawn.MinInterval, config.Spawn.BaseInterval-level*config.Spawn.IntervalPerLevel)
}

// BatchSize is the number of enemies one spawn event produces. It counts the
// integers i >= 0 with i < base+offset, so a fractional base rounds up:
// 0.1 yields one enemy and 1.1 yields two.
func BatchSize(base float64, offset int) int {
	count := base + float64(offset)
	if count <= 0 {
		return 0
	}
	return int(math.Ceil(count))
}

// Spawner counts ticks toward the next spawn event.
type Spawner struct {
	counter int
}

// Advance counts one tick and reports whether a spawn event is due. The
// counter restarts after every event.
func (s *Spawner) Advance(level int) bool {
	s.counter++
	if s.counter >= Interval(level) {
		s.counter = 0
		return true
	}
	return false
}

func (s *Spawner) Counter() int {
	return s.counter
}

func (s *Spawner) Reset() {
	s.counter = 0
}
