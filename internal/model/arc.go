package model

import "math"

// Dial geometry. The sweep starts at the top of the dial and runs clockwise.
const (
	ArcStartingAngle = -0.5 * math.Pi
	ArcInnerRadius   = 0.95
)

// ArcData describes the filled part of the circular dial in radians
type ArcData struct {
	StartingAngle float64 `json:"startingAngle"`
	EndingAngle   float64 `json:"endingAngle"`
	InnerRadius   float64 `json:"innerRadius"`
}

// ArcFor derives the dial arc from the remaining and total countdown lengths
func ArcFor(remainingMs, durationMs int64) ArcData {
	if durationMs <= 0 || remainingMs >= durationMs {
		return FullArc()
	}
	fraction := float64(remainingMs) / float64(durationMs)
	return ArcData{
		StartingAngle: ArcStartingAngle,
		EndingAngle:   2*math.Pi*fraction - 0.5*math.Pi,
		InnerRadius:   ArcInnerRadius,
	}
}

// FullArc is the arc of a countdown with nothing elapsed
func FullArc() ArcData {
	return ArcData{
		StartingAngle: ArcStartingAngle,
		EndingAngle:   1.5 * math.Pi,
		InnerRadius:   ArcInnerRadius,
	}
}

// Sweep returns the covered angle, never negative
func (a ArcData) Sweep() float64 {
	return math.Max(0, a.EndingAngle-a.StartingAngle)
}

// Covers reports whether the angle (radians, measured clockwise from the
// positive x axis in screen coordinates) falls inside the arc.
func (a ArcData) Covers(angle float64) bool {
	sweep := a.Sweep()
	if sweep <= 0 {
		return false
	}
	if sweep >= 2*math.Pi {
		return true
	}
	offset := math.Mod(angle-a.StartingAngle, 2*math.Pi)
	if offset < 0 {
		offset += 2 * math.Pi
	}
	return offset <= sweep
}
