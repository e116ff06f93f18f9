package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/fvbommel/sortorder"
	"github.com/spf13/cobra"

	"github.com/jpalmerr/rosterboard"
)

// listCmd prints the roster a new session starts with.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the seed roster",
	Long: `Print the roster every new session starts with, including the rating
column, as a table.

Sorting only affects this listing; the page keeps the configured order.
Names sort naturally ("학생2" before "학생10").

Example:
  rosterboard list -c config.yaml
  rosterboard list -c config.yaml --sort score`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	listCmd.Flags().String("sort", "", "sort by name, age or score (default: configured order)")
	_ = listCmd.MarkFlagRequired("config")
}

func runList(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	by, _ := cmd.Flags().GetString("sort")

	_, rb, err := loadBoard(configFile)
	if err != nil {
		return err
	}

	students := rb.Students()
	if err := sortStudents(students, by); err != nil {
		return err
	}

	return printStudents(os.Stdout, rb, students)
}

// sortStudents orders students for display. Ties fall back to natural name order.
func sortStudents(students []rosterboard.Student, by string) error {
	var less func(a, b rosterboard.Student) bool
	switch by {
	case "":
		return nil
	case "name":
		less = func(a, b rosterboard.Student) bool { return false }
	case "age":
		less = func(a, b rosterboard.Student) bool { return a.Age() < b.Age() }
	case "score":
		// highest first
		less = func(a, b rosterboard.Student) bool { return a.Score() > b.Score() }
	default:
		return fmt.Errorf("unknown sort key %q (expected name, age or score)", by)
	}

	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return sortorder.NaturalLess(a.Name(), b.Name())
	})
	return nil
}

func printStudents(out io.Writer, rb *rosterboard.RosterBoard, students []rosterboard.Student) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "NAME\tAGE\tGRADE\tCLASS\tSCORE\tRATING")
	for _, s := range students {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			s.Name(),
			s.Age(),
			optional(s.Grade()),
			optional(s.Class()),
			strconv.FormatFloat(s.Score(), 'f', -1, 64),
			rb.RenderRating(s.Score()),
		)
	}
	return w.Flush()
}

// optional renders an unset grade or class as "-".
func optional(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
