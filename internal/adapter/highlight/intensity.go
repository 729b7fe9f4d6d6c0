package highlight

import (
	"math"

	"wordlens/internal/domain"
)

const (
	// MaxIntensity is the strongest highlight signal.
	MaxIntensity = 255
	// MinIntensity is the floor applied to every repeated stem.
	MinIntensity = 1

	curveSteps = 32
	stepScale  = 8
)

// Raw returns the pre-clamp curve value floor((1-(1-d/L)^2)*32). It is
// non-decreasing in distance.
func Raw(distance, length int) int {
	if length <= 0 {
		return 0
	}
	ratio := float64(distance) / float64(length)
	inv := 1 - ratio
	return int(math.Floor((1 - inv*inv) * curveSteps))
}

// Intensity maps a stem's minimum repeat distance to [0,255]. Stems not in
// the result have intensity 0; the sentinel distance follows policy.
func Intensity(result *domain.AnalysisResult, stem string, policy domain.SentinelPolicy) int {
	ws, ok := result.Stat(stem)
	if !ok {
		return 0
	}
	return FromDistance(ws.MinDistance, result.NormalizedLength, policy)
}

// FromDistance applies the intensity curve to one distance.
func FromDistance(distance, length int, policy domain.SentinelPolicy) int {
	if distance == length {
		if policy == domain.SentinelMax {
			return MaxIntensity
		}
		return 0
	}
	v := Raw(distance, length) * stepScale
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
