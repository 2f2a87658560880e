package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kunalv272/StudentTracker/internal/domain/course"
	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
	"github.com/Kunalv272/StudentTracker/internal/infrastructure/messaging"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

// rosterEntry is the YAML shape of one seed record.
type rosterEntry struct {
	Roll   string        `yaml:"roll" json:"roll"`
	Name   string        `yaml:"name" json:"name"`
	Level  string        `yaml:"level" json:"level"`
	Branch string        `yaml:"branch" json:"branch"`
	Marks  student.Marks `yaml:"marks" json:"marks"`
}

type rosterFile struct {
	Students []rosterEntry `yaml:"students"`
}

// sampleRoster returns the built-in seed used when no roster file is given.
func sampleRoster() []rosterEntry {
	return []rosterEntry{
		{
			Roll: "20CS1001", Name: "Amit Kumar", Level: "BTech", Branch: "CSE",
			Marks: student.Marks{Assignment: 15, Midterm: 24, Lab: 10, Final: 45},
		},
		{
			Roll: "21EC2001", Name: "Sunita Sharma", Level: "MTech", Branch: "ECE",
			Marks: student.Marks{Assignment: 18, Midterm: 28, Lab: 12, Final: 40},
		},
		{
			Roll: "19CS0999", Name: "Rahul Verma", Level: "PhD", Branch: "CSE",
			Marks: student.Marks{Assignment: 20, Midterm: 30, Lab: 15, Final: 50},
		},
	}
}

// loadRosterFile reads a YAML roster seed from disk.
func loadRosterFile(path string) ([]rosterEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	if len(f.Students) == 0 {
		return nil, fmt.Errorf("roster file %s contains no students", path)
	}

	return f.Students, nil
}

// newStudentFromEntry validates a seed record and builds a student from it.
func newStudentFromEntry(e rosterEntry) (*student.Student, error) {
	level, err := student.ParseLevel(e.Level)
	if err != nil {
		return nil, err
	}
	branch, err := student.ParseBranch(e.Branch)
	if err != nil {
		return nil, err
	}
	return student.NewStudent(student.NewStudentParams{
		Roll:   e.Roll,
		Name:   e.Name,
		Level:  level,
		Branch: branch,
		Marks:  e.Marks,
	})
}

// buildCourse admits every valid seed record into a fresh course, publishing
// an event per admission. Invalid records are logged and skipped; one bad
// entry never aborts the seed.
func buildCourse(entries []rosterEntry, bus *messaging.Bus, log *logger.Logger) *course.Course {
	crs := course.New()
	for _, e := range entries {
		s, err := newStudentFromEntry(e)
		if err != nil {
			log.Warn("skipping invalid roster entry",
				logger.Roll(e.Roll),
				logger.StudentName(e.Name),
				logger.Err(err),
			)
			continue
		}
		if err := crs.Add(s); err != nil {
			log.Warn("skipping unadmittable roster entry", logger.Roll(e.Roll), logger.Err(err))
			continue
		}
		bus.Publish(shared.NewStudentAddedEvent(
			s.Roll(), s.Name(), s.Level().String(), s.Branch().String(),
		))
	}
	log.Debug("course seeded", logger.Count(crs.Size()))
	return crs
}
