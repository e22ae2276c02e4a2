package game

import (
	"math"
	"math/rand/v2"
)

// Lecture timing, in minutes since midnight.
const (
	FirstLectureStart = 8 * 60
	LastLectureStart  = 18 * 60
	LectureDuration   = 90
)

// GenerateLecture draws the next lecture from the current courses.
// Returns nil when there are no courses.
func GenerateLecture(s *State, rng *rand.Rand) *Lecture {
	if len(s.Courses) == 0 {
		return nil
	}

	idx := rng.IntN(len(s.Courses))
	c := s.Courses[idx]

	l := &Lecture{CourseIndex: idx}
	l.PotentialUnderstandings = scaledCeil(rng, c.MaxUnderstandingsPerLecture)
	l.ProcrastinationValue = scaledCeil(rng, c.MaxProcrastinationsPerLecture)
	l.EnergyCost = scaledCeil(rng, c.MaxEnergyCostPerLecture)
	l.UnderstandChance = 0.01 + rng.Float64()*0.99

	slots := (LastLectureStart-FirstLectureStart)/60 + 1
	l.StartTime = FirstLectureStart + rng.IntN(slots)*60
	l.EndTime = l.StartTime + LectureDuration
	return l
}

// scaledCeil returns ceil(U*bound) for a uniform U in [0,1).
func scaledCeil(rng *rand.Rand, bound float64) float64 {
	u := rng.Float64()
	if bound <= 0 || math.IsNaN(bound) {
		return 0
	}
	if math.IsInf(bound, 1) {
		return bound
	}
	return math.Ceil(u * bound)
}
