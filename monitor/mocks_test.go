package monitor

import (
	"sync"

	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

// fakeHost is a recording statusbar.Host for monitor tests.
type fakeHost struct {
	mu sync.Mutex

	remote bool
	label  string

	commands  map[string]func()
	titles    []string
	details   []string
	errors    []string
	statCalls int
	statFunc  func(path string) error
}

var _ statusbar.Host = (*fakeHost)(nil)

func newFakeHost(remote bool, label string) *fakeHost {
	return &fakeHost{
		remote:   remote,
		label:    label,
		commands: make(map[string]func()),
	}
}

func (h *fakeHost) RegisterCommand(id string, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands[id] = fn
}

func (h *fakeHost) ShowDetail(title, body string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.titles = append(h.titles, title)
	h.details = append(h.details, body)
}

func (h *fakeHost) ShowError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
}

func (h *fakeHost) RemoteKind() (string, bool) {
	return h.label, h.remote
}

func (h *fakeHost) StatPath(path string) error {
	h.mu.Lock()
	h.statCalls++
	fn := h.statFunc
	h.mu.Unlock()
	if fn != nil {
		return fn(path)
	}
	return nil
}

func (h *fakeHost) errorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errors)
}

func (h *fakeHost) detailCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.details)
}
