package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bbsgraph/session"
)

// Terminal styles, kept minimal: a heading, a success/result accent, a
// muted hint, and an error accent.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Menu choices, numbered as presented.
const (
	choiceGenerate = 1
	choiceShow     = 2
	choiceFindPath = 3
	choiceCycle    = 4
	choiceExit     = 5
)

// menu drives the interactive loop: print choices, read one, dispatch,
// repeat until exit or EOF.
type menu struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

func (m *menu) run() error {
	m.scanner = bufio.NewScanner(m.in)

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, titleStyle.Render("bbsgraph"))
		fmt.Fprintln(m.out, "1. Generate New Graph")
		fmt.Fprintln(m.out, "2. Show Graph")
		fmt.Fprintln(m.out, "3. Find a Path")
		fmt.Fprintln(m.out, "4. Detect Cycle")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.readInt("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(m.out, errorStyle.Render(err.Error()))
			continue
		}

		switch choice {
		case choiceGenerate:
			m.generate()
		case choiceShow:
			m.show()
		case choiceFindPath:
			m.findPath()
		case choiceCycle:
			m.detectCycle()
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(m.out, errorStyle.Render("Unknown choice."))
		}
	}
}

func (m *menu) generate() {
	report, err := m.session.Generate()
	if report.BackupPath != "" {
		fmt.Fprintln(m.out, mutedStyle.Render("Previous graph saved to "+report.BackupPath))
	}
	if report.SaveErr != nil {
		// Non-fatal: report and continue.
		fmt.Fprintln(m.out, errorStyle.Render("Warning: could not save previous graph: "+report.SaveErr.Error()))
	}
	if err != nil {
		fmt.Fprintln(m.out, errorStyle.Render("Generation failed: "+err.Error()))
		return
	}
	fmt.Fprintln(m.out, resultStyle.Render("New graph generated!"))
}

func (m *menu) show() {
	out, err := m.session.Describe()
	if err != nil {
		m.reportQueryError(err)
		return
	}
	fmt.Fprintln(m.out, out)
}

func (m *menu) findPath() {
	if m.session.Graph() == nil {
		fmt.Fprintln(m.out, mutedStyle.Render("Generate a graph first."))
		return
	}

	start, err := m.readInt("Start: ")
	if err != nil {
		fmt.Fprintln(m.out, errorStyle.Render(err.Error()))
		return
	}
	end, err := m.readInt("End: ")
	if err != nil {
		fmt.Fprintln(m.out, errorStyle.Render(err.Error()))
		return
	}

	pr, err := m.session.FindPath(start, end)
	if err != nil {
		m.reportQueryError(err)
		return
	}
	if !pr.Found {
		fmt.Fprintln(m.out, "No path found.")
		return
	}
	fmt.Fprintln(m.out, resultStyle.Render(fmt.Sprintf("Path: %v", pr.Path)))
	fmt.Fprintln(m.out, resultStyle.Render(fmt.Sprintf("Cost: %d", pr.Cost)))
}

func (m *menu) detectCycle() {
	cr, err := m.session.DetectCycle()
	if err != nil {
		m.reportQueryError(err)
		return
	}
	if !cr.Found {
		fmt.Fprintln(m.out, "No cycle found.")
		return
	}
	fmt.Fprintln(m.out, resultStyle.Render(fmt.Sprintf("Cycle: %v", cr.Cycle)))
}

func (m *menu) reportQueryError(err error) {
	if errors.Is(err, session.ErrNoGraph) {
		fmt.Fprintln(m.out, mutedStyle.Render("Generate a graph first."))
		return
	}
	fmt.Fprintln(m.out, errorStyle.Render(err.Error()))
}

// readInt prompts and parses one integer line. io.EOF means input ended.
func (m *menu) readInt(prompt string) (int, error) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return 0, err
		}

		return 0, io.EOF
	}

	v, err := strconv.Atoi(strings.TrimSpace(m.scanner.Text()))
	if err != nil {
		return 0, errors.New("please enter a number")
	}

	return v, nil
}
