package gamemath

import "math"

// SteerToward returns a direction from (fromX, fromY) toward (toX, toY)
// whose magnitude ramps linearly from 0 at the origin to 1 at reach and is
// capped at 1 beyond it. It is how pointer and autopilot input are turned
// into a joystick-style vector.
func SteerToward(fromX, fromY, toX, toY, reach float64) Vec {
	dirX := toX - fromX
	dirY := toY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist == 0 || reach <= 0 {
		return Vec{}
	}
	strength := math.Min(dist/reach, 1)
	return Vec{X: dirX / dist * strength, Y: dirY / dist * strength}
}

// ClampMagnitude scales v down so its length is at most max.
func ClampMagnitude(v Vec, max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// ApplyDeadzone zeroes v when its length is below deadzone.
func ApplyDeadzone(v Vec, deadzone float64) Vec {
	if v.Len() < deadzone {
		return Vec{}
	}
	return v
}
