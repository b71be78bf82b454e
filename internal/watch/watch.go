// Package watch reports changes to the file set of a folder.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultDelay is how long a burst of events must settle before onChange
// runs.
const DefaultDelay = 300 * time.Millisecond

// Watcher calls onChange once per burst of create, remove and rename
// events in one folder. onChange runs on the watcher goroutine.
type Watcher struct {
	fs       *fsnotify.Watcher
	delay    time.Duration
	onChange func()
	log      zerolog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// New starts watching dir.
func New(dir string, delay time.Duration, onChange func(), log zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "starting folder watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watching %s", dir)
	}
	w := &Watcher{
		fs:       fw,
		delay:    delay,
		onChange: onChange,
		log:      log.With().Str("dir", dir).Logger(),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("event", ev.String()).Msg("folder changed")
			timer.Reset(w.delay)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("folder watcher error")
		case <-timer.C:
			w.onChange()
		}
	}
}

// Close stops watching. onChange is not called after Close returns.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
