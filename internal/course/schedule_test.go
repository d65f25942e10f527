package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckConflicts(t *testing.T) {
	a := mustCourse(t, "A", 8.0, 10.0, 3)
	b := mustCourse(t, "B", 9.0, 11.0, 3)
	c := mustCourse(t, "C", 14.0, 16.0, 3)

	t.Run("reports every conflicting pair", func(t *testing.T) {
		conflicts := CheckConflicts([]Course{a, b, c})

		assert.Len(t, conflicts, 1)
		assert.Equal(t, "A", conflicts[0].First.ID)
		assert.Equal(t, "B", conflicts[0].Second.ID)
	})

	t.Run("conflict-free set", func(t *testing.T) {
		assert.Empty(t, CheckConflicts([]Course{a, c}))
		assert.False(t, HasConflicts([]Course{a, c}))
	})

	t.Run("has conflicts", func(t *testing.T) {
		assert.True(t, HasConflicts([]Course{a, b}))
	})
}

func TestTotalGap(t *testing.T) {
	a := mustCourse(t, "A", 8.0, 10.0, 3)
	b := mustCourse(t, "B", 10.0, 12.0, 3)
	c := mustCourse(t, "C", 15.0, 17.0, 3)

	t.Run("sums gaps between consecutive courses", func(t *testing.T) {
		assert.Equal(t, 3.0, TotalGap([]Course{a, b, c}))
	})

	t.Run("order of input does not matter", func(t *testing.T) {
		assert.Equal(t, 3.0, TotalGap([]Course{c, a, b}))
	})

	t.Run("zero or one course", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalGap(nil))
		assert.Equal(t, 0.0, TotalGap([]Course{a}))
	})
}

func TestTotalCredits(t *testing.T) {
	a := mustCourse(t, "A", 8.0, 10.0, 4)
	b := mustCourse(t, "B", 10.0, 12.0, 3)

	assert.Equal(t, 7, TotalCredits([]Course{a, b}))
	assert.Equal(t, 0, TotalCredits(nil))
}

func TestEligible(t *testing.T) {
	basic := mustCourse(t, "C1", 8.0, 10.0, 4)
	advanced := mustCourse(t, "C2", 10.0, 12.0, 4, "C1")
	orphan := mustCourse(t, "C3", 14.0, 16.0, 4, "GHOST")

	t.Run("keeps courses with satisfied prerequisites", func(t *testing.T) {
		eligible := Eligible([]Course{basic, advanced, orphan}, map[string]bool{"C1": true})

		assert.Len(t, eligible, 2)
		assert.Equal(t, "C1", eligible[0].ID)
		assert.Equal(t, "C2", eligible[1].ID)
	})

	t.Run("fails closed on prerequisites absent from the catalog", func(t *testing.T) {
		eligible := Eligible([]Course{orphan}, map[string]bool{})
		assert.Empty(t, eligible)
	})

	t.Run("nil completed set", func(t *testing.T) {
		eligible := Eligible([]Course{basic, advanced}, nil)
		assert.Len(t, eligible, 1)
	})
}

func TestValidate(t *testing.T) {
	a := mustCourse(t, "A", 8.0, 10.0, 3)
	b := mustCourse(t, "B", 9.0, 11.0, 3)
	c := mustCourse(t, "C", 14.0, 16.0, 3, "A")
	d := mustCourse(t, "D", 16.0, 18.0, 3, "X")

	t.Run("valid schedule", func(t *testing.T) {
		ok, reason := Validate([]Course{a, c}, map[string]bool{})
		assert.True(t, ok, reason)
	})

	t.Run("detects conflicts with a diagnostic", func(t *testing.T) {
		ok, reason := Validate([]Course{a, b}, map[string]bool{})
		assert.False(t, ok)
		assert.Contains(t, reason, "A vs B")
	})

	t.Run("selection covers its own prerequisites", func(t *testing.T) {
		ok, _ := Validate([]Course{a, c}, nil)
		assert.True(t, ok)
	})

	t.Run("unmet prerequisite", func(t *testing.T) {
		ok, reason := Validate([]Course{d}, map[string]bool{})
		assert.False(t, ok)
		assert.Contains(t, reason, "prerequisites")
	})

	t.Run("completed set satisfies prerequisites", func(t *testing.T) {
		ok, _ := Validate([]Course{d}, map[string]bool{"X": true})
		assert.True(t, ok)
	})
}
