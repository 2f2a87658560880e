package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
	"github.com/Kunalv272/StudentTracker/internal/ordering"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

var demoCmd = &cli.Command{
	Name:   "demo",
	Usage:  "Runs the full walkthrough: seed, mutate, sort three ways, exercise every error path",
	Action: cmdDemo,
}

// cmdDemo runs the canonical walkthrough over the built-in sample roster,
// regardless of any --roster seed, so the output is reproducible.
func cmdDemo(c *cli.Context) error {
	app := getConfig(c)
	w := c.App.Writer

	crs := buildCourse(sampleRoster(), app.Bus, app.Log)

	fmt.Fprintln(w, "== roster (insertion order) ==")
	crs.Each(func(s *student.Student) {
		fmt.Fprintln(w, s.String())
	})

	// In-place mutation through a lookup reference.
	s, err := crs.Lookup("21EC2001")
	if err != nil {
		return err
	}
	marks := s.Marks()
	marks.Final = 42.5
	s.SetMarks(marks)
	app.Bus.Publish(shared.NewMarksUpdatedEvent(s.Roll(), s.Total()))

	fmt.Fprintln(w, "\n== totals after updating 21EC2001 ==")
	crs.Each(func(st *student.Student) {
		fmt.Fprintf(w, "%s: %g\n", st.Roll(), st.Total())
	})

	fmt.Fprintln(w, "\n== sorted by roll ==")
	byRoll := crs.Snapshot()
	ordering.SortByRoll(byRoll)
	for _, st := range byRoll {
		fmt.Fprintln(w, st.String())
	}
	app.Bus.Publish(shared.NewRosterSortedEvent("roll", len(byRoll)))

	fmt.Fprintln(w, "\n== sorted by midterm ==")
	byMidterm := crs.Snapshot()
	ordering.SortByComponent(byMidterm, ordering.ComponentMidterm)
	for _, st := range byMidterm {
		fmt.Fprintln(w, st.String())
	}
	app.Bus.Publish(shared.NewRosterSortedEvent("midterm", len(byMidterm)))

	fmt.Fprintln(w, "\n== sorted by name ==")
	byName := ordering.SortByName(crs)
	for _, st := range byName {
		fmt.Fprintln(w, st.String())
	}
	app.Bus.Publish(shared.NewRosterSortedEvent("name", len(byName)))

	// Every rejection below is expected; the demo logs it and continues.
	fmt.Fprintln(w, "\n== rejected operations ==")

	bad := student.New(student.LevelBTech, student.BranchCSE)
	if err := bad.SetName("SingleName"); err != nil {
		app.Log.Warn("name rejected", logger.StudentName("SingleName"), logger.Err(err))
		fmt.Fprintf(w, "SetName(%q): %v\n", "SingleName", err)
	}

	if err := bad.SetRoll("20CS#1003"); err != nil {
		app.Log.Warn("roll rejected", logger.Roll("20CS#1003"), logger.Err(err))
		fmt.Fprintf(w, "SetRoll(%q): %v\n", "20CS#1003", err)
	}

	if _, err := crs.Lookup("0000/NOTFOUND"); err != nil {
		app.Log.Warn("lookup missed", logger.Roll("0000/NOTFOUND"), logger.Err(err))
		fmt.Fprintf(w, "Lookup(%q): %v\n", "0000/NOTFOUND", err)
	}

	fmt.Fprintln(w, "\n== removal ==")
	if crs.Remove("19CS0999") {
		app.Bus.Publish(shared.NewStudentRemovedEvent("19CS0999"))
		fmt.Fprintf(w, "removed 19CS0999 (%d remaining)\n", crs.Size())
	}
	if !crs.Remove("19CS0999") {
		fmt.Fprintln(w, "removing 19CS0999 again: no match")
	}

	if m := app.Bus.Metrics(); m != nil {
		app.Log.Info("demo complete",
			logger.Count(crs.Size()),
			logger.Int("events_published", int(m.TotalPublished())),
		)
	}
	return nil
}
