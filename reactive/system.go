package reactive

// Subscriber is anything a Dep can notify.
type Subscriber interface {
	Update()
}

// depRecorder is implemented by subscribers that want to know which
// dependencies they were registered with.
type depRecorder interface {
	recordDep(*Dep)
}

// System owns the collector slot that links a tracked read to the subscriber
// that asked for it. A System is not safe for concurrent use; callers must
// serialize access the same way a UI event loop does.
type System struct {
	collectors []Subscriber
}

func NewSystem() *System {
	return &System{}
}

// Target returns the active collector, or nil when no tracked read is in
// progress.
func (sys *System) Target() Subscriber {
	if len(sys.collectors) == 0 {
		return nil
	}
	return sys.collectors[len(sys.collectors)-1]
}

// Track runs fn with sub installed as the active collector. The slot is
// restored when fn returns or panics.
func (sys *System) Track(sub Subscriber, fn func()) {
	sys.collectors = append(sys.collectors, sub)
	defer func() {
		lastIdx := len(sys.collectors) - 1
		sys.collectors[lastIdx] = nil
		sys.collectors = sys.collectors[:lastIdx]
	}()
	fn()
}

// Untrack runs fn with no active collector.
func (sys *System) Untrack(fn func()) {
	sys.Track(nil, fn)
}
