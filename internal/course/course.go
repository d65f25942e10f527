package course

import (
	"fmt"
	"slices"
)

// Course is an immutable offering of one academic term: a fixed time
// interval (clock hours as floats, e.g. 8.5 for 8:30), a credit weight and
// the ids of its prerequisite courses. Construct it through New so that the
// interval and credit invariants always hold.
type Course struct {
	ID            string
	Name          string
	StartTime     float64
	EndTime       float64
	Credits       int
	Prerequisites []string
}

// New validates and builds a Course. It fails if the id is empty, the
// interval is empty or reversed, or the credit weight is not positive.
func New(id, name string, startTime, endTime float64, credits int, prerequisites ...string) (Course, error) {
	if id == "" {
		return Course{}, fmt.Errorf("course id must not be empty")
	}
	if startTime >= endTime {
		return Course{}, fmt.Errorf("course %v: start time (%v) must be before end time (%v)", id, startTime, endTime)
	}
	if credits <= 0 {
		return Course{}, fmt.Errorf("course %v: credits must be positive, got %v", id, credits)
	}
	return Course{
		ID:            id,
		Name:          name,
		StartTime:     startTime,
		EndTime:       endTime,
		Credits:       credits,
		Prerequisites: slices.Clone(prerequisites),
	}, nil
}

// Duration returns the length of the course interval in hours.
func (c Course) Duration() float64 {
	return c.EndTime - c.StartTime
}

// ConflictsWith reports whether the two intervals overlap. Intervals are
// half-open: a course ending exactly when another starts does not conflict.
func (c Course) ConflictsWith(other Course) bool {
	return !(c.EndTime <= other.StartTime || c.StartTime >= other.EndTime)
}

// GapTo returns the idle hours between the end of this course and the start
// of other. It floors at zero when other starts before this course ends, so
// it is only meaningful for chronologically adjacent courses.
func (c Course) GapTo(other Course) float64 {
	if other.StartTime < c.EndTime {
		return 0.0
	}
	return other.StartTime - c.EndTime
}

func (c Course) String() string {
	return fmt.Sprintf("Course(id=%v, name=%v, %v-%v, %v credits)", c.ID, c.Name, c.StartTime, c.EndTime, c.Credits)
}
