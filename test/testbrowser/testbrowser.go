package testbrowser

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/semaphore"
)

type Manager struct {
	baseBrowser *rod.Browser
	sem         *semaphore.Weighted

	Timeout time.Duration
}

type ManagerConfig struct {
	MaxConcurrentTests int64
	Timeout            time.Duration
}

func NewManager(config ManagerConfig) (*Manager, error) {
	browser := rod.New()
	err := browser.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect to browser failed: %w", err)
	}

	maxConcurrentTests := int64(1)
	if config.MaxConcurrentTests != 0 {
		maxConcurrentTests = config.MaxConcurrentTests
	} else if n, err := strconv.ParseInt(os.Getenv("TESTBROWSER_MAX_CONCURRENT_TESTS"), 10, 32); err == nil {
		maxConcurrentTests = n
	}
	if maxConcurrentTests <= 0 {
		return nil, fmt.Errorf("invalid MaxConcurrentTests: %v", maxConcurrentTests)
	}

	timeout := 2 * time.Second
	if config.Timeout != 0 {
		timeout = config.Timeout
	}

	manager := &Manager{
		baseBrowser: browser,
		sem:         semaphore.NewWeighted(maxConcurrentTests),
		Timeout:     timeout,
	}

	return manager, nil
}

// Acquire returns a TestBrowser. Resources are automatically cleaned up at the end of the test.
func (m *Manager) Acquire(t testing.TB) *Browser {
	err := m.sem.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { m.sem.Release(1) })

	browser := m.baseBrowser.MustIncognito()
	t.Cleanup(browser.MustClose)

	testBrowser := &Browser{
		t:       t,
		Browser: browser,
		Timeout: m.Timeout,
	}

	return testBrowser
}

type Browser struct {
	t testing.TB
	*rod.Browser
	Timeout time.Duration
}

func (b *Browser) Page() *Page {
	page, err := b.Browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.t.Fatal(err)
	}

	return &Page{
		t:       b.t,
		Page:    page,
		Timeout: b.Timeout,
	}
}

type Page struct {
	t testing.TB
	*rod.Page
	Timeout time.Duration
}

func (p *Page) ClickOn(jsRegex string) {
	p.t.Helper()

	page := p.Page.Timeout(p.Timeout)

	el, err := page.ElementR(`a, button, input[type="submit"]`, jsRegex)
	if err != nil {
		p.t.Fatalf("failed to find clickable element: %s", jsRegex)
	}

	err = el.Click(proto.InputMouseButtonLeft, 1)
	if err != nil {
		p.t.Fatalf("failed to click element")
	}
}

func (p *Page) FillIn(labelOrSelector string, content string) {
	p.t.Helper()

	page := p.Page.Timeout(p.Timeout)
	var inputEl *rod.Element
	_, err := page.Race().ElementR("label", labelOrSelector).Handle(func(e *rod.Element) error {
		forAttr, err := e.Attribute("for")
		if err != nil {
			return fmt.Errorf("unable to read label's for attribute: %w", err)
		}

		inputEl, err = page.Element("#" + *forAttr)
		if err != nil {
			return fmt.Errorf("unable to find element from label's for attribute: %q %w", *forAttr, err)
		}

		return nil
	}).Element(labelOrSelector).Handle(func(e *rod.Element) error {
		inputEl = e
		return nil
	}).Do()
	if err != nil {
		p.t.Fatalf("failed to find label or selector for %q: %v", labelOrSelector, err)
	}

	err = inputEl.SelectAllText()
	if err != nil {
		p.t.Fatalf("failed to select all text for %q", labelOrSelector)
	}

	err = inputEl.Input(content)
	if err != nil {
		p.t.Fatalf("failed to input text for %q", labelOrSelector)
	}
}

// TypeIn focuses the element matching selector and types content one key at a time without waiting between keys.
// Each key fires its own input event.
func (p *Page) TypeIn(selector string, content string) {
	p.t.Helper()

	el, err := p.Page.Timeout(p.Timeout).Element(selector)
	if err != nil {
		p.t.Fatalf("failed to find element by selector %q", selector)
	}

	keys := make([]input.Key, 0, len(content))
	for _, r := range content {
		keys = append(keys, input.Key(r))
	}

	err = el.Type(keys...)
	if err != nil {
		p.t.Fatalf("failed to type into %q: %v", selector, err)
	}
}

// AcceptDialog runs fn, accepts the dialog it opens, and returns the dialog's message.
func (p *Page) AcceptDialog(fn func()) string {
	p.t.Helper()

	type result struct {
		message string
		err     error
	}

	// HandleDialog is registered before fn runs so a dialog opened immediately is not missed. fn stays on the test
	// goroutine so any failures it triggers are reported from there.
	resultChan := make(chan result, 1)
	wait, handle := p.Page.HandleDialog()
	go func() {
		event := wait()
		err := handle(&proto.PageHandleJavaScriptDialog{Accept: true})
		resultChan <- result{message: event.Message, err: err}
	}()

	fn()

	var r result
	select {
	case r = <-resultChan:
	case <-time.After(p.Timeout):
		p.t.Fatalf("timed out waiting for dialog")
	}
	if r.err != nil {
		p.t.Fatalf("failed to accept dialog: %v", r.err)
	}

	return r.message
}

// WaitFor waits until the JavaScript function js returns true.
func (p *Page) WaitFor(js string, args ...interface{}) {
	p.t.Helper()

	err := p.Page.Timeout(p.Timeout).Wait(rod.Eval(js, args...))
	if err != nil {
		p.t.Fatalf("failed waiting for %s: %v", js, err)
	}
}

// HasFocus waits until the element with id has input focus.
func (p *Page) HasFocus(id string) {
	p.t.Helper()

	p.WaitFor(`(id) => document.activeElement !== null && document.activeElement.id === id`, id)
}

// HasValue waits until the input with id holds value.
func (p *Page) HasValue(id, value string) {
	p.t.Helper()

	p.WaitFor(`(id, value) => document.getElementById(id).value === value`, id, value)
}

func (p *Page) HasContent(selector, jsRegex string) {
	p.t.Helper()

	page := p.Page.Timeout(p.Timeout)
	_, err := page.ElementR(selector, jsRegex)
	if err != nil {
		p.t.Fatalf("failed to find element by selector %q with content matching %q", selector, jsRegex)
	}
}
