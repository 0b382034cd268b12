// Package datasource streams chart states out of CSV trace files,
// republishing a fresh state whenever the backing file changes on
// disk.
package datasource

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"gioui.org/x/explorer"
	"git.sr.ht/~graphwise/axischart"
	"github.com/fsnotify/fsnotify"
)

// Snapshot is one published chart state. Seq increases with every
// publication so consumers can cheaply detect new data; Err carries
// load failures without tearing the stream down.
type Snapshot struct {
	Seq   int
	Path  string
	State axischart.ChartState
	Names []string
	Err   error
}

// RWBox guards a value with a read-write lock.
type RWBox[T any] struct {
	t    T
	lock sync.RWMutex
}

func (r *RWBox[T]) Read(f func(*T)) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f(&r.t)
}

func (r *RWBox[T]) Write(f func(*T)) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f(&r.t)
}

type input struct {
	path string
	// static holds data handed over as a bare reader, with no path
	// to watch.
	static []axischart.Series
	names  []string
}

// Source loads chart data and publishes snapshots. Open may be called
// at any time to retarget a running source at a different file; every
// States stream picks the change up.
type Source struct {
	current RWBox[input]
	reload  chan struct{}
}

// NewSource returns a source with nothing loaded.
func NewSource() *Source {
	return &Source{reload: make(chan struct{}, 1)}
}

// Open retargets the source at the CSV file at path.
func (s *Source) Open(path string) {
	s.current.Write(func(in *input) {
		*in = input{path: path}
	})
	s.wake()
}

// OpenFromExplorer asks the platform file picker for a trace. Files
// that expose their path are watched like Open; anonymous streams are
// parsed once.
func (s *Source) OpenFromExplorer(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile()
	if err != nil {
		return fmt.Errorf("failed picking file: %w", err)
	}
	if named, ok := file.(interface{ Name() string }); ok {
		file.Close()
		s.Open(named.Name())
		return nil
	}
	defer file.Close()
	series, names, err := ParseSeries(file)
	if err != nil {
		return err
	}
	s.current.Write(func(in *input) {
		*in = input{static: series, names: names}
	})
	s.wake()
	return nil
}

func (s *Source) wake() {
	select {
	case s.reload <- struct{}{}:
	default:
	}
}

// States provides the snapshot stream for this source. It has the
// shape expected by skel's stream.New, so a UI can read it with
// ReadInto and be invalidated on every publication.
func (s *Source) States(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go s.run(ctx, out)
	return out
}

func (s *Source) run(ctx context.Context, out chan<- Snapshot) {
	defer close(out)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("failed creating file watcher: %v", err)
		return
	}
	defer watcher.Close()

	seq := 0
	watched := ""
	emit := func(snap Snapshot) bool {
		seq++
		snap.Seq = seq
		select {
		case out <- snap:
			return true
		case <-ctx.Done():
			return false
		}
	}
	load := func() bool {
		var in input
		s.current.Read(func(i *input) { in = *i })
		if in.static != nil {
			return emit(Snapshot{State: StateFor(in.static), Names: in.names})
		}
		if in.path == "" {
			return true
		}
		if watched != in.path {
			if watched != "" {
				watcher.Remove(watched)
			}
			if err := watcher.Add(in.path); err != nil {
				log.Printf("failed watching %q: %v", in.path, err)
			} else {
				watched = in.path
			}
		}
		snap := Snapshot{Path: in.path}
		snap.State, snap.Names, snap.Err = loadFile(in.path)
		return emit(snap)
	}

	if !load() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.reload:
			if !load() {
				return
			}
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Name != watched || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if !load() {
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("file watcher error: %v", err)
		}
	}
}

func loadFile(path string) (axischart.ChartState, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return axischart.ChartState{}, nil, fmt.Errorf("failed opening trace: %w", err)
	}
	defer f.Close()
	series, names, err := ParseSeries(f)
	if err != nil {
		return axischart.ChartState{}, nil, err
	}
	return StateFor(series), names, nil
}
