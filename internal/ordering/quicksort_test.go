package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunalv272/StudentTracker/internal/domain/student"
)

func mustStudent(t *testing.T, roll, name string, marks student.Marks) *student.Student {
	t.Helper()
	s, err := student.NewStudent(student.NewStudentParams{
		Roll:   roll,
		Name:   name,
		Level:  student.LevelBTech,
		Branch: student.BranchCSE,
		Marks:  marks,
	})
	require.NoError(t, err)
	return s
}

func rolls(snap []*student.Student) []string {
	out := make([]string, 0, len(snap))
	for _, s := range snap {
		out = append(out, s.Roll())
	}
	return out
}

func TestSortByRoll(t *testing.T) {
	t.Run("orders ascending", func(t *testing.T) {
		snap := []*student.Student{
			mustStudent(t, "20CS1001", "Amit Kumar", student.Marks{}),
			mustStudent(t, "21EC2001", "Sunita Sharma", student.Marks{}),
			mustStudent(t, "19CS0999", "Rahul Verma", student.Marks{}),
		}
		SortByRoll(snap)
		assert.Equal(t, []string{"19CS0999", "20CS1001", "21EC2001"}, rolls(snap))
	})

	t.Run("idempotent", func(t *testing.T) {
		snap := []*student.Student{
			mustStudent(t, "C3", "Maya Rao", student.Marks{}),
			mustStudent(t, "A1", "Amit Kumar", student.Marks{}),
			mustStudent(t, "B2", "Rahul Verma", student.Marks{}),
		}
		SortByRoll(snap)
		want := rolls(snap)
		SortByRoll(snap)
		assert.Equal(t, want, rolls(snap))
	})

	t.Run("reversed input", func(t *testing.T) {
		snap := []*student.Student{
			mustStudent(t, "E5", "Amit Kumar", student.Marks{}),
			mustStudent(t, "D4", "Amit Kumar", student.Marks{}),
			mustStudent(t, "C3", "Amit Kumar", student.Marks{}),
			mustStudent(t, "B2", "Amit Kumar", student.Marks{}),
			mustStudent(t, "A1", "Amit Kumar", student.Marks{}),
		}
		SortByRoll(snap)
		assert.Equal(t, []string{"A1", "B2", "C3", "D4", "E5"}, rolls(snap))
	})

	t.Run("empty and single", func(t *testing.T) {
		var empty []*student.Student
		SortByRoll(empty)
		assert.Empty(t, empty)

		one := []*student.Student{mustStudent(t, "A1", "Amit Kumar", student.Marks{})}
		SortByRoll(one)
		assert.Equal(t, []string{"A1"}, rolls(one))
	})
}

func TestSortByComponent(t *testing.T) {
	t.Run("orders by selected component", func(t *testing.T) {
		snap := []*student.Student{
			mustStudent(t, "A1", "Amit Kumar", student.Marks{Midterm: 30}),
			mustStudent(t, "B2", "Sunita Sharma", student.Marks{Midterm: 24}),
			mustStudent(t, "C3", "Rahul Verma", student.Marks{Midterm: 28}),
		}
		SortByComponent(snap, ComponentMidterm)
		assert.Equal(t, []string{"B2", "C3", "A1"}, rolls(snap))

		for i := 1; i < len(snap); i++ {
			assert.LessOrEqual(t,
				ComponentMidterm.Of(snap[i-1]),
				ComponentMidterm.Of(snap[i]),
			)
		}
	})

	t.Run("equal values break ties by roll", func(t *testing.T) {
		snap := []*student.Student{
			mustStudent(t, "C3", "Amit Kumar", student.Marks{Lab: 10}),
			mustStudent(t, "A1", "Sunita Sharma", student.Marks{Lab: 10}),
			mustStudent(t, "B2", "Rahul Verma", student.Marks{Lab: 10}),
		}
		SortByComponent(snap, ComponentLab)
		assert.Equal(t, []string{"A1", "B2", "C3"}, rolls(snap))

		// Deterministic regardless of starting permutation.
		snap[0], snap[1] = snap[1], snap[0]
		SortByComponent(snap, ComponentLab)
		assert.Equal(t, []string{"A1", "B2", "C3"}, rolls(snap))
	})
}

func TestParseComponent(t *testing.T) {
	for _, label := range Components {
		t.Run(label, func(t *testing.T) {
			c, err := ParseComponent(label)
			require.NoError(t, err)
			assert.Equal(t, label, c.String())
		})
	}

	_, err := ParseComponent("attendance")
	assert.Error(t, err)
}

func TestComponentOf(t *testing.T) {
	s := mustStudent(t, "A1", "Amit Kumar", student.Marks{Assignment: 1, Midterm: 2, Lab: 3, Final: 4})
	assert.Equal(t, 1.0, ComponentAssignment.Of(s))
	assert.Equal(t, 2.0, ComponentMidterm.Of(s))
	assert.Equal(t, 3.0, ComponentLab.Of(s))
	assert.Equal(t, 4.0, ComponentFinal.Of(s))
}
