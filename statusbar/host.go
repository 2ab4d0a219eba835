package statusbar

// Host is the UI shell contract the monitor depends on. The terminal
// application implements it; tests substitute a recording fake.
type Host interface {
	// RegisterCommand binds a callback to a stable command identifier.
	// Clicking a slot whose Command matches the identifier invokes the
	// callback.
	RegisterCommand(id string, fn func())

	// ShowDetail presents a modal informational view with a title and a
	// multi-line body.
	ShowDetail(title, body string)

	// ShowError surfaces a non-blocking error notification.
	ShowError(msg string)

	// RemoteKind reports whether the host operates against a non-local
	// backend and, if so, a label for the backend kind. Read once at
	// startup; the answer must not change over the process lifetime.
	RemoteKind() (label string, remote bool)

	// StatPath performs a file-metadata probe against the given path.
	// Callers use its wall-clock duration as a latency measurement; the
	// metadata itself is discarded.
	StatPath(path string) error
}

// NopHost is a Host that discards everything. Used by the one-shot output
// modes, where no interactive shell exists.
type NopHost struct {
	// Remote optionally pins the environment identity. When nil, the
	// process environment is consulted.
	Remote *EnvIdentity
}

// RegisterCommand discards the registration.
func (h *NopHost) RegisterCommand(string, func()) {}

// ShowDetail discards the view.
func (h *NopHost) ShowDetail(string, string) {}

// ShowError discards the notification.
func (h *NopHost) ShowError(string) {}

// RemoteKind reports the pinned identity, or detects from the environment.
func (h *NopHost) RemoteKind() (string, bool) {
	if h.Remote != nil {
		return h.Remote.Label, h.Remote.Remote
	}
	id := DetectEnv()
	return id.Label, id.Remote
}

// StatPath probes the path with os.Stat.
func (h *NopHost) StatPath(path string) error {
	return statPath(path)
}
