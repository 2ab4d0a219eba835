// Package tui implements the terminal shell hosting the status bar: a
// Bubbletea application with clickable slot zones, a modal detail view, and
// non-blocking error toasts. It is the statusbar.Host implementation used by
// the interactive mode.
package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

// defaultRefresh is the render refresh cadence. Slot writes land between
// refreshes; the next tick picks them up.
const defaultRefresh = 500 * time.Millisecond

// Compile-time interface compliance check.
var _ statusbar.Host = (*App)(nil)

// App owns the Bubbletea program and implements the host contract the
// monitor depends on. Host calls may arrive from sampling goroutines before
// the program runs; they are dropped safely in that window.
type App struct {
	bar     *statusbar.Bar
	logger  *slog.Logger
	refresh time.Duration
	zones   *zone.Manager

	// env is the backend identity, detected once at construction.
	env statusbar.EnvIdentity

	// statFunc backs StatPath; overridable for tests.
	statFunc func(string) error

	mu       sync.Mutex
	commands map[string]func()
	program  *tea.Program
}

// NewApp creates the terminal shell around the given bar.
// If logger is nil, a no-op logger is used.
func NewApp(bar *statusbar.Bar, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		bar:      bar,
		logger:   logger,
		refresh:  defaultRefresh,
		zones:    zone.New(),
		env:      statusbar.DetectEnv(),
		statFunc: defaultStat,
		commands: make(map[string]func()),
	}
}

func defaultStat(path string) error {
	_, err := os.Stat(path)
	return err
}

// RegisterCommand binds a callback to a command identifier.
func (a *App) RegisterCommand(id string, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.commands[id] = fn
}

// invokeCommand runs a registered command callback. Unknown identifiers are
// logged and ignored.
func (a *App) invokeCommand(id string) {
	a.mu.Lock()
	fn := a.commands[id]
	a.mu.Unlock()

	if fn == nil {
		a.logger.Warn("unknown command", "id", id)
		return
	}
	fn()
}

// ShowDetail presents a modal detail view.
func (a *App) ShowDetail(title, body string) {
	a.send(detailMsg{title: title, body: body})
}

// ShowError surfaces a non-blocking error toast.
func (a *App) ShowError(msg string) {
	a.send(errMsg{text: msg})
}

// RemoteKind reports the backend identity detected at construction.
func (a *App) RemoteKind() (string, bool) {
	return a.env.Label, a.env.Remote
}

// StatPath probes a path's file metadata.
func (a *App) StatPath(path string) error {
	return a.statFunc(path)
}

// send posts a message into the running program. Messages sent before Run
// are dropped; the monitor's next pass repeats the state anyway.
func (a *App) send(msg tea.Msg) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run starts the Bubbletea program and blocks until it exits. Cancelling the
// context shuts the program down and is reported as a clean exit.
func (a *App) Run(ctx context.Context) error {
	m := newModel(a)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	a.mu.Lock()
	a.program = p
	a.mu.Unlock()

	_, err := p.Run()

	a.mu.Lock()
	a.program = nil
	a.mu.Unlock()

	if ctx.Err() != nil {
		return nil
	}
	return err
}
