package mesh

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gonavquery/navmesh"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changed navmesh data files. Events are debounced, since
// editors and bakers tend to fire several writes per save.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close signals shutdown and stops the underlying fsnotify watcher. The
// run goroutine owns Events and Errors and closes them on exit, so a
// consumer blocked on either channel unblocks cleanly.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isNavMeshFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func isNavMeshFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".nav"
}

// Reloader maps watched navmesh files to world ids and republishes them
// into a NavMeshSystem. The system is not safe for concurrent use, so the
// reloader never touches it from the watcher goroutine: the owner calls
// Process on the thread that runs queries.
type Reloader struct {
	watcher *Watcher
	system  *navmesh.NavMeshSystem
	worlds  map[string]uint32 // absolute file path -> worldId
	log     *zap.Logger
}

func NewReloader(watcher *Watcher, system *navmesh.NavMeshSystem, log *zap.Logger) *Reloader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reloader{
		watcher: watcher,
		system:  system,
		worlds:  map[string]uint32{},
		log:     log,
	}
}

// Track associates a navmesh file with a world id for future reloads.
func (r *Reloader) Track(path string, worldId uint32) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	r.worlds[abs] = worldId
	return nil
}

// Process drains pending change events and reloads the affected worlds.
// Returns the number of worlds reloaded. Decode failures are logged and
// leave the previously loaded mesh in place.
func (r *Reloader) Process() int {
	reloaded := 0
	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				return reloaded
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				continue
			}
			worldId, ok := r.worlds[abs]
			if !ok {
				continue
			}
			data, err := LoadFromFile(abs)
			if err != nil {
				r.log.Error("navmesh reload failed",
					zap.String("path", abs),
					zap.Uint32("worldId", worldId),
					zap.Error(err))
				continue
			}
			r.system.LoadNavMesh(data, worldId)
			reloaded++
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return reloaded
			}
			r.log.Error("navmesh watcher error", zap.Error(err))
		default:
			return reloaded
		}
	}
}
