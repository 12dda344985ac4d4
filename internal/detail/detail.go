// Package detail drives the test suite detail page: it loads the suite and
// its test cases, applies owner and description edits as JSON patches, and
// exposes the result as a Snapshot for rendering.
package detail

import (
	"context"
	"errors"
	"sync"

	"metadata-catalog/internal/client"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/logger"
	"metadata-catalog/internal/pagination"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/patch"
	"metadata-catalog/internal/session"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
)

// DefaultPageSize is the number of test cases requested per page.
const DefaultPageSize = 10

// Fields requested with every test case listing.
var testCaseFields = []string{"testCaseResult", "testDefinition"}

// Controller owns the suite, its test cases and the page flags. All methods
// are safe for concurrent use; a completion that was overtaken by a newer
// request for the same data is dropped.
type Controller struct {
	api      client.API
	session  *session.Session
	notifier Notifier
	pageSize int
	pager    *pagination.Controller[types.TestCase]

	mu                  sync.Mutex
	suiteGen            uint64
	casesGen            uint64
	name                string
	state               State
	suite               *types.TestSuite
	breadcrumb          []BreadcrumbLink
	activeTab           Tab
	testCases           []types.TestCase
	testCasesLoaded     bool
	descriptionEditable bool
	deleteWidgetVisible bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize overrides DefaultPageSize.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a controller in the Idle state.
func New(api client.API, s *session.Session, n Notifier, opts ...Option) *Controller {
	if n == nil {
		n = NotifierFunc(func(Notification) {})
	}
	c := &Controller{
		api:       api,
		session:   s,
		notifier:  n,
		pageSize:  DefaultPageSize,
		state:     StateIdle,
		activeTab: TabTestCases,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pager = pagination.New(c.fetchPage)
	return c
}

func (c *Controller) log(ctx context.Context) *logger.Logger {
	c.mu.Lock()
	name := c.name
	c.mu.Unlock()
	return logger.WithContext(session.NewContext(ctx, c.session)).WithField("test_suite", name)
}

func (c *Controller) notify(ctx context.Context, kind Kind, err error) {
	n := newNotification(kind, err)
	c.log(ctx).WithField("kind", string(kind)).Warnf("%s", n)
	c.notifier.Notify(n)
}

// Mount loads the suite called name and then the first page of its test
// cases. Navigating to another suite while a load is in flight discards the
// older result.
func (c *Controller) Mount(ctx context.Context, name string) {
	c.mu.Lock()
	c.suiteGen++
	gen := c.suiteGen
	c.casesGen++
	c.name = name
	c.state = StateLoading
	c.suite = nil
	c.breadcrumb = nil
	c.testCases = nil
	c.testCasesLoaded = false
	c.descriptionEditable = false
	c.pager.Reset(paging.Paging{})
	c.mu.Unlock()

	c.log(ctx).Debugf("loading test suite")

	suite, err := c.api.GetTestSuiteByName(ctx, name, []string{"owner"})
	if err == nil && suite == nil {
		err = apperrors.ErrUnexpectedResponse
	}

	c.mu.Lock()
	if gen != c.suiteGen {
		c.mu.Unlock()
		c.log(ctx).Debugf("discarding stale test suite response")
		return
	}
	if err != nil {
		c.state = StateError
		c.suite = nil
		c.mu.Unlock()
		c.notify(ctx, KindFetchTestSuite, err)
		return
	}
	c.suite = suite
	c.breadcrumb = Breadcrumb(suite.FullyQualifiedName, suite.Name)
	c.state = StateLoaded
	c.mu.Unlock()

	c.log(ctx).Debugf("test suite loaded")
	c.loadFirstPage(ctx, gen)
}

// RefreshTestCases reloads the first page of test cases, as after a test
// case was edited.
func (c *Controller) RefreshTestCases(ctx context.Context) {
	c.mu.Lock()
	gen := c.suiteGen
	c.mu.Unlock()
	c.loadFirstPage(ctx, gen)
}

func (c *Controller) loadFirstPage(ctx context.Context, suiteGen uint64) {
	c.mu.Lock()
	if suiteGen != c.suiteGen || c.suite == nil {
		c.mu.Unlock()
		return
	}
	suiteID := c.suite.ID
	c.casesGen++
	gen := c.casesGen
	c.testCasesLoaded = false
	c.mu.Unlock()

	list, err := c.api.ListTestCases(ctx, c.listParams(suiteID))
	if err == nil && list == nil {
		err = apperrors.ErrUnexpectedResponse
	}

	c.mu.Lock()
	if gen != c.casesGen {
		c.mu.Unlock()
		c.log(ctx).Debugf("discarding stale test case page")
		return
	}
	c.testCasesLoaded = true
	if err != nil {
		c.testCases = []types.TestCase{}
		c.mu.Unlock()
		c.notify(ctx, KindFetchTestCases, err)
		return
	}
	c.testCases = list.Data
	c.pager.Reset(list.Paging)
	c.mu.Unlock()
}

// ChangePage follows the before or after cursor of the current test case page.
// pageIndex is only used for display.
func (c *Controller) ChangePage(ctx context.Context, d paging.Direction, pageIndex int) {
	c.mu.Lock()
	if c.suite == nil {
		c.mu.Unlock()
		return
	}
	c.casesGen++
	gen := c.casesGen
	c.testCasesLoaded = false
	c.mu.Unlock()

	list, err := c.pager.RequestPage(ctx, d, pageIndex)

	c.mu.Lock()
	if gen != c.casesGen || errors.Is(err, apperrors.ErrSuperseded) {
		c.mu.Unlock()
		c.log(ctx).Debugf("discarding stale test case page")
		return
	}
	c.testCasesLoaded = true
	switch {
	case errors.Is(err, apperrors.ErrNoPage):
		c.mu.Unlock()
		c.log(ctx).Debugf("no test case page %s", d)
	case err != nil:
		c.testCases = []types.TestCase{}
		c.mu.Unlock()
		c.notify(ctx, KindFetchTestCases, err)
	default:
		c.testCases = list.Data
		c.mu.Unlock()
	}
}

func (c *Controller) fetchPage(ctx context.Context, d paging.Direction, token string) (*paging.List[types.TestCase], error) {
	c.mu.Lock()
	if c.suite == nil {
		c.mu.Unlock()
		return nil, apperrors.ErrNoPage
	}
	params := c.listParams(c.suite.ID)
	c.mu.Unlock()

	switch d {
	case paging.Before:
		params.Before = token
	case paging.After:
		params.After = token
	}

	list, err := c.api.ListTestCases(ctx, params)
	if err == nil && list == nil {
		err = apperrors.ErrUnexpectedResponse
	}
	return list, err
}

func (c *Controller) listParams(suiteID uuid.UUID) client.ListTestCaseParams {
	return client.ListTestCaseParams{
		Fields:      testCaseFields,
		TestSuiteID: &suiteID,
		Limit:       c.pageSize,
	}
}

// UpdateOwner merges fields into the current owner and submits the change.
// A nil or zero update does nothing.
func (c *Controller) UpdateOwner(ctx context.Context, fields *types.EntityReference) {
	if fields == nil || *fields == (types.EntityReference{}) {
		return
	}

	c.mu.Lock()
	if c.suite == nil {
		c.mu.Unlock()
		return
	}
	prev := *c.suite
	gen := c.suiteGen
	c.mu.Unlock()

	next := prev
	next.Owner = mergeOwner(prev.Owner, *fields)

	res, err := c.submit(ctx, prev, next)
	switch {
	case errors.Is(err, apperrors.ErrEmptyPatch):
		c.log(ctx).Debugf("owner unchanged")
	case err != nil:
		c.notify(ctx, KindUpdateOwner, err)
	case res == nil:
		c.notify(ctx, KindUnexpectedResponse, apperrors.ErrUnexpectedResponse)
	default:
		c.replaceSuite(gen, res)
	}
}

// UpdateDescription submits text as the new description. Edit mode is always
// left, whatever the outcome.
func (c *Controller) UpdateDescription(ctx context.Context, text string) {
	defer c.SetDescriptionEditable(false)

	c.mu.Lock()
	if c.suite == nil || c.suite.Description == text {
		c.mu.Unlock()
		return
	}
	prev := *c.suite
	gen := c.suiteGen
	c.mu.Unlock()

	next := prev
	next.Description = text

	res, err := c.submit(ctx, prev, next)
	switch {
	case errors.Is(err, apperrors.ErrEmptyPatch):
		c.log(ctx).Debugf("description unchanged")
	case err != nil:
		c.notify(ctx, KindUpdateTestSuite, err)
	case res == nil:
		c.notify(ctx, KindUnexpectedResponse, apperrors.ErrUnexpectedResponse)
	default:
		c.replaceSuite(gen, res)
	}
}

// submit diffs prev against next and sends the patch. An empty diff is
// reported as ErrEmptyPatch and never reaches the network.
func (c *Controller) submit(ctx context.Context, prev, next types.TestSuite) (*types.TestSuite, error) {
	p, err := patch.CompareEntities(prev, next)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, apperrors.ErrEmptyPatch
	}
	c.log(ctx).Debugf("submitting %d patch operations", len(p))
	return c.api.UpdateTestSuite(ctx, prev.ID, p)
}

func (c *Controller) replaceSuite(gen uint64, res *types.TestSuite) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.suiteGen || c.suite == nil || c.suite.ID != res.ID {
		return
	}
	c.suite = res
}

// mergeOwner overlays the non-zero fields of update on current.
func mergeOwner(current *types.EntityReference, update types.EntityReference) *types.EntityReference {
	var merged types.EntityReference
	if current != nil {
		merged = *current
	}
	if update.ID != uuid.Nil {
		merged.ID = update.ID
	}
	if update.Type != "" {
		merged.Type = update.Type
	}
	if update.Name != "" {
		merged.Name = update.Name
	}
	if update.FullyQualifiedName != "" {
		merged.FullyQualifiedName = update.FullyQualifiedName
	}
	if update.DisplayName != "" {
		merged.DisplayName = update.DisplayName
	}
	if update.Deleted {
		merged.Deleted = true
	}
	return &merged
}

// ChangeTab selects a tab. Unknown tabs are ignored.
func (c *Controller) ChangeTab(tab Tab) {
	if !tab.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

// SetDescriptionEditable opens or closes the description editor.
func (c *Controller) SetDescriptionEditable(editable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.descriptionEditable = editable
}

// SetDeleteWidgetVisible shows or hides the delete confirmation.
func (c *Controller) SetDeleteWidgetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteWidgetVisible = visible
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Name:                c.name,
		State:               c.state,
		Breadcrumb:          append([]BreadcrumbLink(nil), c.breadcrumb...),
		Tabs:                append([]TabInfo(nil), Tabs...),
		ActiveTab:           c.activeTab,
		TestCases:           append([]types.TestCase(nil), c.testCases...),
		TestCasesLoaded:     c.testCasesLoaded,
		Paging:              c.pager.Paging(),
		CurrentPage:         c.pager.CurrentPage(),
		DescriptionEditable: c.descriptionEditable,
		DeleteWidgetVisible: c.deleteWidgetVisible,
	}
	if c.suite != nil {
		suite := *c.suite
		if suite.Owner != nil {
			owner := *suite.Owner
			suite.Owner = &owner
		}
		snap.TestSuite = &suite
		snap.Owner = OwnerOf(suite.Owner)
	}
	snap.ExtraInfo = []ExtraInfo{OwnerInfo(snap.Owner)}
	return snap
}
