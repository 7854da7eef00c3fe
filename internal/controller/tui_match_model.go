package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/linepatch/internal/model"
)

type fileItem struct {
	path  string
	count int
	lines string
}

func (f fileItem) FilterValue() string {
	return f.path
}

type matchDelegate struct {
	renderer *lipgloss.Renderer
}

func (d matchDelegate) Height() int  { return 1 }
func (d matchDelegate) Spacing() int { return 0 }
func (d matchDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d matchDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	var pathStyle, countStyle lipgloss.Style

	if index == lm.Index() {
		pathStyle = d.renderer.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = d.renderer.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
	} else {
		pathStyle = d.renderer.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = d.renderer.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
	}

	width := lm.Width() - 8 // count column (6) + spacing (2)

	_, _ = fmt.Fprintf(w, "%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// matchListModel browses per-file match counts produced by a scan.
type matchListModel struct {
	renderer *lipgloss.Renderer
	width    int
	height   int
	fileList list.Model
	total    int
	files    int
}

func newMatchListModel(results []m.FileResult, renderer *lipgloss.Renderer) matchListModel {
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, fileItem{
			path:  string(r.Path),
			count: len(r.Matches),
			lines: formatLines(r.Matches),
		})
	}

	fileList := list.New(items, matchDelegate{renderer: renderer}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return matchListModel{
		renderer: renderer,
		width:    80,
		height:   24,
		fileList: fileList,
		total:    totalMatches(results),
		files:    len(results),
	}
}

func (mm matchListModel) Init() tea.Cmd {
	return nil
}

func (mm matchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mm.width = msg.Width
		mm.height = msg.Height
		mm.fileList.SetWidth(mm.listWidth())
		mm.fileList.SetHeight(mm.listHeight())

		return mm, nil

	case tea.KeyMsg:
		if mm.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return mm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	mm.fileList, cmd = mm.fileList.Update(msg)

	return mm, cmd
}

func (mm matchListModel) View() string {
	title := mm.renderer.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render("linepatch scan")

	accent := mm.renderer.NewStyle().Foreground(lipgloss.Color("6"))
	summary := mm.renderer.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf("Matches: %s   Files: %s",
			accent.Render(fmt.Sprintf("%d", mm.total)),
			accent.Render(fmt.Sprintf("%d", mm.files)),
		))

	detail := ""
	if item, ok := mm.fileList.SelectedItem().(fileItem); ok && item.lines != "" {
		detail = mm.renderer.NewStyle().Padding(0, 0, 0, 2).Render("lines: " + item.lines)
	}

	table := mm.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(mm.fileList.View())

	footer := mm.renderer.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(mm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, table, detail, footer)
}

func (mm matchListModel) listWidth() int {
	// margin (2) + border (2) + padding (2)
	return max(mm.width-6, 10)
}

func (mm matchListModel) listHeight() int {
	// title (2) + summary (2) + detail (1) + footer (1) + border (2)
	return max(mm.height-8, 5)
}
