package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Kunalv272/StudentTracker/internal/domain/student"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// recordView is the serializable projection of a student record.
type recordView struct {
	Roll   string        `json:"roll" yaml:"roll"`
	Name   string        `json:"name" yaml:"name"`
	Level  string        `json:"level" yaml:"level"`
	Branch string        `json:"branch" yaml:"branch"`
	Marks  student.Marks `json:"marks" yaml:"marks"`
	Total  float64       `json:"total" yaml:"total"`
}

func toView(s *student.Student) recordView {
	return recordView{
		Roll:   s.Roll(),
		Name:   s.Name(),
		Level:  s.Level().String(),
		Branch: s.Branch().String(),
		Marks:  s.Marks(),
		Total:  s.Total(),
	}
}

func toViews(students []*student.Student) []recordView {
	views := make([]recordView, 0, len(students))
	for _, s := range students {
		views = append(views, toView(s))
	}
	return views
}

// encode writes v to w in the requested format. Text output falls back to the
// record's one-line string form when v is a student list.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatYAML, "yml":
		return yaml.NewEncoder(w).Encode(v)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// printStudents writes a student list in the configured output format.
func printStudents(c *cli.Context, students []*student.Student) error {
	app := getConfig(c)
	if app.Format == formatText || app.Format == "" {
		for _, s := range students {
			fmt.Fprintln(c.App.Writer, s.String())
		}
		return nil
	}
	return encode(c.App.Writer, app.Format, toViews(students))
}
