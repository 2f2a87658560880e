package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
	"github.com/Kunalv272/StudentTracker/internal/ordering"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

var (
	byFlag = &cli.StringFlag{
		Name:  "by",
		Usage: "Sort key [roll, name, assignment, midterm, lab, final]",
		Value: "roll",
	}

	sortCmd = &cli.Command{
		Name:   "sort",
		Usage:  "Prints the roster ordered by a sort key",
		Flags:  []cli.Flag{byFlag},
		Action: cmdSort,
	}
)

func cmdSort(c *cli.Context) error {
	app := getConfig(c)
	key := c.String(byFlag.Name)

	snap, err := sortedSnapshot(app, key)
	if err != nil {
		return err
	}

	app.Bus.Publish(shared.NewRosterSortedEvent(key, len(snap)))
	return printStudents(c, snap)
}

// sortedSnapshot resolves the sort key and returns an ordered snapshot of the
// course. The course itself is never reordered.
func sortedSnapshot(app *appConfig, key string) ([]*student.Student, error) {
	switch key {
	case "roll":
		snap := app.Course.Snapshot()
		ordering.SortByRoll(snap)
		return snap, nil
	case "name":
		return ordering.SortByName(app.Course), nil
	default:
		component, err := ordering.ParseComponent(key)
		if err != nil {
			return nil, fmt.Errorf("resolving sort key %q: %w", key, err)
		}
		snap := app.Course.Snapshot()
		ordering.SortByComponent(snap, component)
		app.Log.Debug("sorted by component", logger.Component(component.String()))
		return snap, nil
	}
}
