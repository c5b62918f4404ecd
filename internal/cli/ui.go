package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphcolor/pkg/coloring"
)

// stdout receives all user-facing output. Logs and the spinner use stderr.
var stdout io.Writer = os.Stdout

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed    = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// status line markers
var (
	markSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	markError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	markWarning = lipgloss.NewStyle().Foreground(colorYellow).Render("!")
	markInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
)

func printStatus(mark, msg string) {
	fmt.Fprintln(stdout, mark+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(markSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(markError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(markWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile announces a written file.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printStats prints graph statistics on a single line.
func printStats(nodeCount, edgeCount, maxDegree int, meanDegree float64, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d edges", edgeCount),
		fmt.Sprintf("max degree %d", maxDegree),
		fmt.Sprintf("mean degree %.2f", meanDegree),
	}

	status := styleComputed.Render("fresh")
	if cached {
		status = styleCached.Render("cached")
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + status
	fmt.Fprintln(stdout, line)
}

// renderAttempts renders one table row per budget attempt. The row of the
// budget that was kept is highlighted.
func renderAttempts(attempts []coloring.Outcome, kept int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	keptStyle := cellStyle.Foreground(colorGreen)
	failedStyle := cellStyle.Foreground(colorDim)

	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, []string{
			strconv.Itoa(a.Budget),
			a.State.String(),
			strconv.Itoa(a.Rounds),
			strconv.Itoa(a.Uncolored),
			a.Duration.Round(time.Microsecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Budget", "State", "Rounds", "Uncolored", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			a := attempts[row]
			switch {
			case a.Converged() && a.Budget == kept:
				return keptStyle
			case !a.Converged():
				return failedStyle
			}
			return cellStyle
		})
	return t.Render()
}

// printVerdict prints the validator verdict for a colored graph.
func printVerdict(r coloring.Report) {
	if r.Valid {
		printSuccess("Graph is properly colored")
		return
	}
	printError("Graph is not properly colored")
	printDetail("%d uncolored, %d conflicting", r.Uncolored, r.Conflicts)
}
