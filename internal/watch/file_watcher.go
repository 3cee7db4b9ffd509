package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/util/sets"
)

// FileWatcher reports changes to a fixed set of files after a quiet period.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    sets.Set[string]
	debounce time.Duration
	onChange func()
	wg       sync.WaitGroup
}

// NewFileWatcher watches files (their parent directories, which survives
// editors that replace files by rename) and calls onChange once per burst of
// events that settles for debounce.
func NewFileWatcher(files []string, debounce time.Duration, onChange func()) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.RuntimeError("failed to create file watcher").WithCause(err).Build()
	}
	fw := &FileWatcher{watcher: w, files: sets.New[string](), debounce: debounce, onChange: onChange}
	dirs := sets.New[string]()
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, ferrors.FileSystemError("failed to resolve watched path").WithCause(err).WithContext("path", f).Build()
		}
		fw.files.Add(abs)
		dirs.Add(filepath.Dir(abs))
	}
	for _, dir := range sets.Sorted(dirs) {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, ferrors.FileSystemError("failed to watch directory").WithCause(err).WithContext("path", dir).Build()
		}
	}
	return fw, nil
}

// Start runs the event loop until ctx is canceled or Close is called.
func (fw *FileWatcher) Start(ctx context.Context) {
	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		fw.loop(ctx)
	}()
}

// Close stops watching and waits for the event loop to exit.
func (fw *FileWatcher) Close() error {
	err := fw.watcher.Close()
	fw.wg.Wait()
	return err
}

func (fw *FileWatcher) loop(ctx context.Context) {
	timer := time.NewTimer(fw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			slog.Debug("Watched file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(fw.debounce)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			fw.onChange()
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !fw.files.Has(filepath.Clean(event.Name)) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
