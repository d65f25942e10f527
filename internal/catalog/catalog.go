// Package catalog loads course catalogs from JSON files. Records are decoded
// loosely into maps first and then validated field by field, so a malformed
// record is rejected with a reason instead of silently defaulting.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/beatriz-fulgencio/optimization-class-scheduling/internal/course"
)

// record mirrors one course entry of the catalog file. Pointer fields
// distinguish an absent required field from a zero value.
type record struct {
	ID        *string  `mapstructure:"id"`
	Name      *string  `mapstructure:"name"`
	StartTime *float64 `mapstructure:"start_time"`
	EndTime   *float64 `mapstructure:"end_time"`
	// Credits is decoded as a float so a fractional value in the file is
	// rejected instead of truncated on the way to an int.
	Credits       *float64 `mapstructure:"credits"`
	Prerequisites []string `mapstructure:"prerequisites"`
}

type catalogFile struct {
	Courses []map[string]any `mapstructure:"courses"`
}

// Load reads and parses the catalog file at the given path.
func Load(path string) ([]course.Course, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	return Parse(raw)
}

// Parse builds the ordered course catalog out of decoded JSON. It rejects
// records with missing required fields, duplicate ids and invalid course
// invariants.
func Parse(raw map[string]any) ([]course.Course, error) {
	var file catalogFile
	if err := mapstructure.Decode(raw, &file); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}

	courses := make([]course.Course, 0, len(file.Courses))
	seen := make(map[string]bool, len(file.Courses))

	for i, entry := range file.Courses {
		var rec record
		if err := mapstructure.Decode(entry, &rec); err != nil {
			return nil, fmt.Errorf("cannot decode course record %v: %w", i, err)
		}
		if rec.ID == nil || rec.Name == nil || rec.StartTime == nil || rec.EndTime == nil || rec.Credits == nil {
			return nil, fmt.Errorf("course record %v is missing a required field", i)
		}
		if seen[*rec.ID] {
			return nil, fmt.Errorf("duplicate course id %v", *rec.ID)
		}
		seen[*rec.ID] = true

		if *rec.Credits != math.Trunc(*rec.Credits) {
			return nil, fmt.Errorf("course record %v: credits must be a whole number, got %v", i, *rec.Credits)
		}

		c, err := course.New(*rec.ID, *rec.Name, *rec.StartTime, *rec.EndTime, int(*rec.Credits), rec.Prerequisites...)
		if err != nil {
			return nil, fmt.Errorf("course record %v: %w", i, err)
		}
		courses = append(courses, c)
	}

	return courses, nil
}
