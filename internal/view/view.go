package view

import (
	"fmt"
	"strings"
	"time"

	"metadata-catalog/internal/detail"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	noOwner       = "No Owner"
	noDescription = "No description"
	loading       = "Loading..."
)

// Render draws a snapshot with the default styles.
func Render(snap detail.Snapshot) string {
	return DefaultStyles().Render(snap)
}

// Render draws a snapshot: header, description, tab bar and the active tab.
func (s Styles) Render(snap detail.Snapshot) string {
	switch snap.State {
	case detail.StateIdle:
		return ""
	case detail.StateLoading:
		return s.Muted.Render(loading)
	case detail.StateError:
		return s.Error.Render(fmt.Sprintf("Test suite %q could not be loaded.", snap.Name))
	}

	sections := []string{
		s.breadcrumb(snap.Breadcrumb),
		s.extraInfo(snap.ExtraInfo),
		s.description(snap),
		s.tabBar(snap.Tabs, snap.ActiveTab),
	}

	switch snap.ActiveTab {
	case detail.TabTestCases:
		sections = append(sections, s.testCasesTab(snap))
	case detail.TabPipeline:
		sections = append(sections, s.pipelineTab())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s Styles) breadcrumb(links []detail.BreadcrumbLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		if l.URL == "" {
			parts = append(parts, s.Title.Render(l.Name))
			continue
		}
		parts = append(parts, s.Crumb.Render(l.Name))
	}
	return strings.Join(parts, s.Muted.Render(" / "))
}

func (s Styles) extraInfo(infos []detail.ExtraInfo) string {
	lines := make([]string, 0, len(infos))
	for _, info := range infos {
		value := info.PlaceholderText
		switch {
		case value == "" && info.Value == "":
			value = s.Muted.Render(noOwner)
		case info.IsLink:
			value = fmt.Sprintf("%s %s", value, s.Link.Render(info.Value))
		}
		lines = append(lines, s.Label.Render(info.Key+":")+" "+value)
	}
	return strings.Join(lines, "\n")
}

func (s Styles) description(snap detail.Snapshot) string {
	label := "Description:"
	if snap.DescriptionEditable {
		label = "Description (editing):"
	}
	text := s.Muted.Render(noDescription)
	if snap.TestSuite != nil && snap.TestSuite.Description != "" {
		text = s.Body.Render(snap.TestSuite.Description)
	}
	return s.Label.Render(label) + "\n" + text + "\n"
}

func (s Styles) tabBar(tabs []detail.TabInfo, active detail.Tab) string {
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.Position == active {
			rendered = append(rendered, s.ActiveTab.Render("["+t.Name+"]"))
			continue
		}
		rendered = append(rendered, s.Tab.Render(t.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (s Styles) pipelineTab() string {
	return s.Panel.Render("Test suite runs are scheduled by the ingestion pipeline.")
}

func (s Styles) testCasesTab(snap detail.Snapshot) string {
	if !snap.TestCasesLoaded {
		return s.Muted.Render(loading)
	}
	if len(snap.TestCases) == 0 {
		return s.Muted.Render("No test cases")
	}

	headers := []string{"Name", "Status", "Test Definition", "Last Run"}
	rows := make([][]string, 0, len(snap.TestCases))
	for _, tc := range snap.TestCases {
		rows = append(rows, testCaseRow(tc))
	}

	return s.table(headers, rows) + "\n" + s.pager(snap.Paging, snap.CurrentPage)
}

func testCaseRow(tc types.TestCase) []string {
	name := tc.DisplayName
	if name == "" {
		name = tc.Name
	}
	status, lastRun := "-", "-"
	if r := tc.TestCaseResult; r != nil {
		status = r.TestCaseStatus
		if r.Timestamp > 0 {
			lastRun = time.UnixMilli(r.Timestamp).UTC().Format("2006-01-02 15:04")
		}
	}
	definition := "-"
	if tc.TestDefinition != nil {
		definition = tc.TestDefinition.Name
	}
	return []string{name, status, definition, lastRun}
}

func (s Styles) statusStyle(status string) lipgloss.Style {
	switch status {
	case "Success":
		return s.Success
	case "Failed":
		return s.Failed
	case "Aborted":
		return s.Aborted
	}
	return s.Body
}

func (s Styles) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h) + 2
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell) + 2; w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sep := s.Muted.Render("|")

	for i, h := range headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s.Header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(s.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(sep)
			}
			style := s.Body
			if i == 1 {
				style = s.statusStyle(cell)
			}
			sb.WriteString(style.Padding(0, 1).Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s Styles) pager(p paging.Paging, page int) string {
	prev, next := s.Muted.Render("< Previous"), s.Muted.Render("Next >")
	if p.Before != nil {
		prev = s.Crumb.Render("< Previous")
	}
	if p.After != nil {
		next = s.Crumb.Render("Next >")
	}
	return fmt.Sprintf("%s  Page %d  %s  (%d total)", prev, page, next, p.Total)
}
