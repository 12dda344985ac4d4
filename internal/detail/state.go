package detail

import (
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/types"
)

// State is the lifecycle of the suite itself. Test case loading is tracked
// separately by Snapshot.TestCasesLoaded.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Tab selects the panel under the suite header.
type Tab int

const (
	TabTestCases Tab = 1
	TabPipeline  Tab = 2
)

// Valid reports whether t is one of the page's tabs.
func (t Tab) Valid() bool {
	return t == TabTestCases || t == TabPipeline
}

// TabInfo describes one entry of the tab bar.
type TabInfo struct {
	Name        string
	IsProtected bool
	Position    Tab
}

// Tabs is the fixed tab bar of the page.
var Tabs = []TabInfo{
	{Name: "Test Cases", Position: TabTestCases},
	{Name: "Pipeline", Position: TabPipeline},
}

// Snapshot is a read-only copy of the controller state for rendering.
type Snapshot struct {
	Name      string
	State     State
	TestSuite *types.TestSuite
	Owner     Owner
	ExtraInfo []ExtraInfo

	Breadcrumb []BreadcrumbLink
	Tabs       []TabInfo
	ActiveTab  Tab

	TestCases       []types.TestCase
	TestCasesLoaded bool
	Paging          paging.Paging
	CurrentPage     int

	DescriptionEditable bool
	DeleteWidgetVisible bool
}
