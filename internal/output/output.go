// Package output renders solver results and status lines for the terminal.
//
// Functions use lipgloss for styling but abstract away the details from
// callers. Every function writes to an explicit io.Writer; when that writer is
// not a terminal lipgloss drops the colors and plain text remains, and a
// table wider than the terminal is wrapped to fit.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	totalStyle   = numberStyle.Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Row is one line of a production plan.
type Row struct {
	Resource  string
	Units     float64
	Factories int
}

// Success prints a success message in green.
//
// Example:
//
//	output.Success(os.Stdout, "Solved 21 resources")
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

// Error prints an error message in red.
func Error(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✘ "+msg))
}

// Info prints an informational message in cyan.
func Info(w io.Writer, msg string) {
	fmt.Fprintln(w, infoStyle.Render(msg))
}

// Plan renders rows as a bordered table followed by the factory total.
// Units are shown with two decimals; Factories is the rounded-up count.
func Plan(w io.Writer, rows []Row) error {
	total := 0
	body := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		body = append(body, []string{
			r.Resource,
			strconv.FormatFloat(r.Units, 'f', 2, 64),
			strconv.Itoa(r.Factories),
		})
		if r.Factories > 0 {
			total += r.Factories
		}
	}
	body = append(body, []string{"total", "", strconv.Itoa(total)})
	last := len(body)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("RESOURCE", "UNITS", "FACTORIES").
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last-1 && col == 2:
				return totalStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	out := t.Render()
	if tw := terminalWidth(w); tw > 0 && lipgloss.Width(out) > tw {
		out = t.Width(tw).Render()
	}
	_, err := fmt.Fprintln(w, out)

	return err
}

// terminalWidth returns the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}

	return width
}
