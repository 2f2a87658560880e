// Package ordering implements the three sorting strategies over course
// snapshots: comparator quicksorts by roll and by mark component, and a
// character-trie sort by name.
//
// The comparator sorts operate in place on a snapshot exported from a course;
// the name sort builds a transient trie from a fresh snapshot and returns a
// new slice. All three produce deterministic total orders for any input.
package ordering

import (
	"strings"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
)

// Component selects one of the four mark components.
type Component int

const (
	ComponentAssignment Component = iota
	ComponentMidterm
	ComponentLab
	ComponentFinal
)

// Components lists the valid component labels for help text.
var Components = []string{"assignment", "midterm", "lab", "final"}

// String returns the component label.
func (c Component) String() string {
	switch c {
	case ComponentAssignment:
		return "assignment"
	case ComponentMidterm:
		return "midterm"
	case ComponentLab:
		return "lab"
	case ComponentFinal:
		return "final"
	default:
		return "unknown"
	}
}

// ParseComponent parses a component label, case-insensitively.
func ParseComponent(s string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assignment":
		return ComponentAssignment, nil
	case "midterm":
		return ComponentMidterm, nil
	case "lab":
		return ComponentLab, nil
	case "final":
		return ComponentFinal, nil
	default:
		return 0, shared.NewDomainError("ordering", "ParseComponent", shared.ErrValidation, "unknown mark component")
	}
}

// Of returns the selected component of a student's marks.
func (c Component) Of(s *student.Student) float64 {
	m := s.Marks()
	switch c {
	case ComponentAssignment:
		return m.Assignment
	case ComponentMidterm:
		return m.Midterm
	case ComponentLab:
		return m.Lab
	case ComponentFinal:
		return m.Final
	default:
		return 0
	}
}

// SortByRoll sorts a snapshot in place by roll number, ascending bytewise.
// Rolls compared directly make ties unobservable, so the order is a
// deterministic total order and repeated application is idempotent.
func SortByRoll(snap []*student.Student) {
	quickSort(snap, 0, len(snap)-1, cmpRoll)
}

// SortByComponent sorts a snapshot in place by the selected mark component,
// ascending, with ties broken by ascending roll so the result is fully
// deterministic even with duplicate values.
func SortByComponent(snap []*student.Student, component Component) {
	quickSort(snap, 0, len(snap)-1, func(a, b *student.Student) int {
		va, vb := component.Of(a), component.Of(b)
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
		return cmpRoll(a, b)
	})
}

func cmpRoll(a, b *student.Student) int {
	return strings.Compare(a.Roll(), b.Roll())
}

// quickSort is an in-place partition sort with the middle element as pivot.
// O(n log n) average, O(n^2) on adversarial input, which is acceptable at
// roster scale. cmp must define a total order for determinism.
func quickSort(arr []*student.Student, lo, hi int, cmp func(a, b *student.Student) int) {
	if lo >= hi {
		return
	}
	pivot := arr[(lo+hi)/2]
	i, j := lo, hi
	for i <= j {
		for cmp(arr[i], pivot) < 0 {
			i++
		}
		for cmp(arr[j], pivot) > 0 {
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
		}
	}
	if lo < j {
		quickSort(arr, lo, j, cmp)
	}
	if i < hi {
		quickSort(arr, i, hi, cmp)
	}
}
