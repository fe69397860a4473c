package media

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"tripmate/internal/logging"
)

// Picker stands in for the camera/file picker: it watches a drop
// directory and surfaces newly arrived images matching the configured
// glob patterns.
type Picker struct {
	watcher  *fsnotify.Watcher
	patterns []string
	events   chan string
	done     chan struct{}
}

// NewPicker watches dir for new files matching patterns. An empty dir
// disables the picker (typed file paths still work).
func NewPicker(dir string, patterns []string) (*Picker, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	p := &Picker{
		watcher:  watcher,
		patterns: patterns,
		events:   make(chan string, 8),
		done:     make(chan struct{}),
	}
	go p.run()
	return p, nil
}

// Events delivers absolute paths of newly dropped images.
func (p *Picker) Events() <-chan string {
	return p.events
}

func (p *Picker) matches(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range p.patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (p *Picker) run() {
	defer close(p.events)
	for {
		select {
		case <-p.done:
			return
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !p.matches(event.Name) {
				continue
			}
			select {
			case p.events <- event.Name:
			default:
				// Drop when the screen isn't consuming; the user can
				// still type the path.
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("picker watch error", "error", err)
		}
	}
}

// Close stops watching.
func (p *Picker) Close() error {
	close(p.done)
	return p.watcher.Close()
}
