package student

import (
	"fmt"
	"strings"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
)

// Level is the academic level of a student. It replaces the historical
// BTech/MTech/PhD subclassing with a tagged value: behaviour never differed
// beyond the label, so no dispatch is needed.
type Level int

const (
	LevelBTech Level = iota
	LevelMTech
	LevelPhD
)

// IsValid checks that the level is one of the known tiers.
func (l Level) IsValid() bool {
	return l >= LevelBTech && l <= LevelPhD
}

// String returns the human-readable level label.
func (l Level) String() string {
	switch l {
	case LevelBTech:
		return "BTech"
	case LevelMTech:
		return "MTech"
	case LevelPhD:
		return "PhD"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level label, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "btech":
		return LevelBTech, nil
	case "mtech":
		return LevelMTech, nil
	case "phd":
		return LevelPhD, nil
	default:
		return 0, shared.ErrInvalidLevel
	}
}

// Branch is the department a student belongs to.
type Branch int

const (
	BranchCSE Branch = iota
	BranchECE
)

// IsValid checks that the branch is one of the known departments.
func (b Branch) IsValid() bool {
	return b == BranchCSE || b == BranchECE
}

// String returns the branch label.
func (b Branch) String() string {
	switch b {
	case BranchCSE:
		return "CSE"
	case BranchECE:
		return "ECE"
	default:
		return "unknown"
	}
}

// ParseBranch parses a branch label, case-insensitively.
func ParseBranch(s string) (Branch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cse":
		return BranchCSE, nil
	case "ece":
		return BranchECE, nil
	default:
		return 0, shared.ErrInvalidBranch
	}
}

// Marks holds the four mark components of a student.
// Non-negative values are expected by convention but not enforced.
type Marks struct {
	Assignment float64 `json:"assignment" yaml:"assignment"`
	Midterm    float64 `json:"midterm" yaml:"midterm"`
	Lab        float64 `json:"lab" yaml:"lab"`
	Final      float64 `json:"final" yaml:"final"`
}

// Total returns the aggregate of all four components. There is no cached
// aggregate field; the sum is recomputed on every call.
func (m Marks) Total() float64 {
	return m.Assignment + m.Midterm + m.Lab + m.Final
}

// IsValid reports whether every component is non-negative.
func (m Marks) IsValid() bool {
	return m.Assignment >= 0 && m.Midterm >= 0 && m.Lab >= 0 && m.Final >= 0
}

// Student is the central entity of the tracker. Fields are unexported so a
// record can never hold an unvalidated roll or name; mutation goes through
// the validating setters, and lookups hand out *Student so in-place mutation
// is visible in the owning course.
type Student struct {
	roll   string
	name   string
	level  Level
	branch Branch
	marks  Marks
}

// New creates an empty student with the given level and branch. Roll and name
// are assigned afterwards through the validating setters.
func New(level Level, branch Branch) *Student {
	return &Student{level: level, branch: branch}
}

// NewStudentParams contains the parameters for creating a fully populated
// student in one step.
type NewStudentParams struct {
	Roll   string
	Name   string
	Level  Level
	Branch Branch
	Marks  Marks
}

// NewStudent creates a new student with validation of all fields. Either every
// field is applied or none is.
func NewStudent(params NewStudentParams) (*Student, error) {
	if !params.Level.IsValid() {
		return nil, shared.ErrInvalidLevel
	}
	if !params.Branch.IsValid() {
		return nil, shared.ErrInvalidBranch
	}

	s := New(params.Level, params.Branch)
	if err := s.SetRoll(params.Roll); err != nil {
		return nil, err
	}
	if err := s.SetName(params.Name); err != nil {
		return nil, err
	}
	s.SetMarks(params.Marks)
	return s, nil
}

// SetName validates and assigns the display name. On error the previous name
// is retained.
func (s *Student) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	bounded, err := boundedCopy(NameMax, name)
	if err != nil {
		return err
	}
	s.name = bounded
	return nil
}

// Name returns the display name.
func (s *Student) Name() string { return s.name }

// SetRoll validates and assigns the roll number. On error the previous roll
// is retained.
func (s *Student) SetRoll(roll string) error {
	if err := ValidateRoll(roll); err != nil {
		return err
	}
	bounded, err := boundedCopy(RollMax, roll)
	if err != nil {
		return err
	}
	s.roll = bounded
	return nil
}

// Roll returns the roll number.
func (s *Student) Roll() string { return s.roll }

// Level returns the academic level.
func (s *Student) Level() Level { return s.level }

// Branch returns the department.
func (s *Student) Branch() Branch { return s.branch }

// SetMarks assigns the mark components.
func (s *Student) SetMarks(m Marks) {
	s.marks = m
}

// Marks returns a copy of the mark components.
func (s *Student) Marks() Marks { return s.marks }

// Total returns the aggregate marks, recomputed from the components.
func (s *Student) Total() float64 {
	return s.marks.Total()
}

// String returns the one-line record form used by the console demo.
func (s *Student) String() string {
	return fmt.Sprintf(
		"Roll: %s | Name: %s | Level: %s | Branch: %s | Marks: A=%g M=%g L=%g F=%g | Total=%g",
		s.roll, s.name, s.level, s.branch,
		s.marks.Assignment, s.marks.Midterm, s.marks.Lab, s.marks.Final,
		s.Total(),
	)
}
