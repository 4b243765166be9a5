// Command layoutdebug is a small bubbletea program that drives an
// Engine's debug step generator interactively: press n to advance one
// phase, q to quit. It builds a fixed scene (the §8 header/content/
// footer layout), arms debug mode, and renders one Step per keypress
// with lipgloss panels.
package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kestrel-ui/layout"
	"github.com/kestrel-ui/layout/memnode"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func buildScene() *memnode.Node {
	root := memnode.New()
	root.SetWidth(800)
	root.SetHeight(400)
	root.SetStyle("display: vertical\npadding: 0\nborder: 2")
	root.Tag("root")

	header := memnode.New()
	header.SetStyle("height: 60\nwidth: 100%")
	header.Tag("header")

	content := memnode.New()
	content.SetStyle("display: horizontal\nheight: 280\nwidth: 100%\nfitContent: true")
	content.Tag("content")
	sidebar := memnode.New()
	sidebar.SetStyle("width: 120")
	sidebar.Tag("sidebar")
	main := memnode.New()
	main.SetStyle("width: 330")
	main.Tag("main")
	content.Add(sidebar, main)

	footer := memnode.New()
	footer.SetStyle("height: 40\nwidth: 100%")
	footer.Tag("footer")

	root.Add(header, content, footer)
	return root
}

type model struct {
	engine *layout.Engine
	steps  []layout.Step
	done   bool
}

func newModel() model {
	root := buildScene()
	engine := layout.NewEngine()
	engine.EnableDebugMode(root)
	return model{engine: engine}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		if m.done {
			return m, nil
		}
		step, ok := m.engine.NextStep()
		if !ok {
			m.done = true
			return m, nil
		}
		m.steps = append(m.steps, step)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("layoutdebug"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("n: next step   q: quit"))
	b.WriteString("\n\n")

	if len(m.steps) == 0 {
		b.WriteString(dimStyle.Render("press n to take the first step"))
		b.WriteString("\n")
		return b.String()
	}

	last := m.steps[len(m.steps)-1]
	b.WriteString(labelStyle.Render(fmt.Sprintf("step %d: %s", len(m.steps), last.Label)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(renderSnapshotTable(last.Subject)))
	b.WriteString("\n")

	for _, c := range last.Children {
		b.WriteString(panelStyle.Render(renderSnapshotTable(c)))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(dimStyle.Render("sequence exhausted"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSnapshotTable formats a Snapshot as a width-aligned property
// table, using go-runewidth so columns line up when values contain
// wide runes.
func renderSnapshotTable(s layout.Snapshot) string {
	rows := [][2]string{
		{"tags", strings.Join(s.Tags, ",")},
		{"classes", s.Classes},
		{"x,y", fmt.Sprintf("%.1f, %.1f", s.X, s.Y)},
		{"w,h", fmt.Sprintf("%.1f x %.1f", s.Width, s.Height)},
	}
	labelWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > labelWidth {
			labelWidth = w
		}
	}
	var b strings.Builder
	for _, r := range rows {
		pad := labelWidth - runewidth.StringWidth(r[0])
		b.WriteString(r[0])
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" : ")
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		log.Fatal(err)
	}
}
