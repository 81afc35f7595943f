package simulation

import "log/slog"

// RunHeadless ticks s with pilot's input at the nominal step until the
// session ends or maxTicks ticks have run. maxTicks 0 means no limit.
func RunHeadless(s *Simulation, pilot *Autopilot, maxTicks uint64) State {
	for !s.State().Terminal() {
		if maxTicks > 0 && s.Ticks() >= maxTicks {
			slog.Info("max_ticks_reached", "ticks", s.Ticks())
			break
		}
		s.Tick(pilot.Input(s), 0)
	}
	return s.State()
}
