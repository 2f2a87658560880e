// Package course contains the Course collection that owns student records.
//
// A Course is an ordered, growable sequence of students. It exclusively owns
// every record it admits; lookups and snapshots hand out borrowed references
// that must not outlive the course. The collection is not safe for concurrent
// use, and a snapshot is valid only until the course next mutates.
package course

import (
	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
)

// Course is an append-at-back collection of students keyed by roll number.
// Uniqueness of rolls is a convention, not an enforced invariant: duplicates
// are admitted and lookups return the first match.
type Course struct {
	students []*student.Student
}

// New creates an empty course.
func New() *Course {
	return &Course{students: make([]*student.Student, 0)}
}

// Add admits a student, transferring ownership to the course. Records with an
// empty roll are rejected; every admitted record has a validated identity.
func (c *Course) Add(s *student.Student) error {
	if s == nil {
		return shared.ErrNilStudent
	}
	if s.Roll() == "" {
		return shared.ErrEmptyRoll
	}
	c.students = append(c.students, s)
	return nil
}

// FindByRoll returns the first student with the given roll, or nil when no
// record matches. Linear scan.
func (c *Course) FindByRoll(roll string) *student.Student {
	for _, s := range c.students {
		if s.Roll() == roll {
			return s
		}
	}
	return nil
}

// Lookup returns a mutable reference to the first student with the given
// roll, or ErrRollNotFound when absent. Mutation through the reference is
// visible on subsequent lookups.
func (c *Course) Lookup(roll string) (*student.Student, error) {
	if s := c.FindByRoll(roll); s != nil {
		return s, nil
	}
	return nil, shared.ErrRollNotFound
}

// Remove removes the first student with the given roll, releasing ownership.
// It reports whether a match existed; a miss leaves the course unchanged.
func (c *Course) Remove(roll string) bool {
	for i, s := range c.students {
		if s.Roll() == roll {
			c.students = append(c.students[:i], c.students[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns the current membership as a slice of borrowed references.
// The slice itself is owned by the caller, but it is invalidated as an
// ordering input by any subsequent mutation of the course.
func (c *Course) Snapshot() []*student.Student {
	snap := make([]*student.Student, len(c.students))
	copy(snap, c.students)
	return snap
}

// Size returns the number of students in the course.
func (c *Course) Size() int {
	return len(c.students)
}

// Each calls fn for every student in insertion order.
func (c *Course) Each(fn func(*student.Student)) {
	for _, s := range c.students {
		fn(s)
	}
}
