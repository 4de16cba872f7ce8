package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Owner is what a Watcher reads its path from.
type Owner interface {
	Data() *Object
}

// Callback receives the new and previous value of a watched path.
type Callback func(value, oldValue any)

// Watcher is one binding's interest in a single top-level key of its owner's
// data. It is never torn down.
type Watcher struct {
	sys   *System
	owner Owner
	path  string
	value any
	cb    Callback
	deps  mapset.Set[*Dep]
}

// NewWatcher creates the watcher and performs a tracked read so that it is
// subscribed before returning.
func NewWatcher(sys *System, owner Owner, path string, cb Callback) *Watcher {
	w := &Watcher{
		sys:   sys,
		owner: owner,
		path:  path,
		cb:    cb,
		deps:  mapset.NewThreadUnsafeSet[*Dep](),
	}
	w.value = w.Get()
	return w
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Value() any {
	return w.value
}

// Deps returns the distinct dependencies this watcher has registered with.
func (w *Watcher) Deps() []*Dep {
	return w.deps.ToSlice()
}

func (w *Watcher) recordDep(d *Dep) {
	w.deps.Add(d)
}

// Get reads the watched path with this watcher as the active collector.
// Every call registers again; nothing is deduplicated.
func (w *Watcher) Get() any {
	var value any
	w.sys.Track(w, func() {
		value = w.owner.Data().Get(w.path)
	})
	return value
}

func (w *Watcher) Update() {
	w.Run()
}

// Run re-reads the path untracked and fires the callback when the value has
// strictly changed.
func (w *Watcher) Run() {
	value := w.owner.Data().Get(w.path)
	oldValue := w.value
	if StrictEqual(value, oldValue) {
		return
	}
	w.value = value
	if w.cb != nil {
		w.cb(value, oldValue)
	}
}
