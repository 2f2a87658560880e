package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

var (
	rollFlag = &cli.StringFlag{
		Name:     "roll",
		Usage:    "Roll number of the student",
		Required: true,
	}

	rosterCmd = &cli.Command{
		Name:  "roster",
		Usage: "Inspect the seeded roster",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Prints every record in insertion order",
				Action: cmdRosterList,
			},
			{
				Name:   "totals",
				Usage:  "Prints roll and aggregate total per record",
				Action: cmdRosterTotals,
			},
			{
				Name:   "find",
				Usage:  "Prints the first record matching a roll number",
				Flags:  []cli.Flag{rollFlag},
				Action: cmdRosterFind,
			},
			{
				Name:   "remove",
				Usage:  "Removes the first record matching a roll number",
				Flags:  []cli.Flag{rollFlag},
				Action: cmdRosterRemove,
			},
		},
	}
)

func cmdRosterList(c *cli.Context) error {
	app := getConfig(c)
	return printStudents(c, app.Course.Snapshot())
}

func cmdRosterTotals(c *cli.Context) error {
	app := getConfig(c)

	if app.Format != formatText && app.Format != "" {
		type totalView struct {
			Roll  string  `json:"roll" yaml:"roll"`
			Total float64 `json:"total" yaml:"total"`
		}
		views := make([]totalView, 0, app.Course.Size())
		app.Course.Each(func(s *student.Student) {
			views = append(views, totalView{Roll: s.Roll(), Total: s.Total()})
		})
		return encode(c.App.Writer, app.Format, views)
	}

	app.Course.Each(func(s *student.Student) {
		fmt.Fprintf(c.App.Writer, "%s: %g\n", s.Roll(), s.Total())
	})
	return nil
}

func cmdRosterFind(c *cli.Context) error {
	app := getConfig(c)
	roll := c.String(rollFlag.Name)

	s, err := app.Course.Lookup(roll)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", roll, err)
	}

	if app.Format == formatText || app.Format == "" {
		fmt.Fprintln(c.App.Writer, s.String())
		return nil
	}
	return encode(c.App.Writer, app.Format, toView(s))
}

func cmdRosterRemove(c *cli.Context) error {
	app := getConfig(c)
	roll := c.String(rollFlag.Name)

	if !app.Course.Remove(roll) {
		return fmt.Errorf("removing %s: %w", roll, shared.ErrRollNotFound)
	}

	app.Bus.Publish(shared.NewStudentRemovedEvent(roll))
	app.Log.Info("student removed", logger.Roll(roll), logger.Count(app.Course.Size()))
	fmt.Fprintf(c.App.Writer, "removed %s (%d remaining)\n", roll, app.Course.Size())
	return nil
}
