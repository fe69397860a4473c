package ui

// RefreshMsg asks the TUI to repaint from fresh controller snapshots.
// Controllers emit it (via the app) after every state change.
type RefreshMsg struct{}

// PickedImageMsg carries a newly dropped image from the watched picker
// directory to whichever screen can use it.
type PickedImageMsg struct {
	Path string
}

// StatusMsg shows a transient status line note.
type StatusMsg struct {
	Text string
}
