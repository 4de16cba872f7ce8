package reactive

// Dep is the subscriber registry for a single reactive property.
type Dep struct {
	key  string
	subs []Subscriber
}

func NewDep(key string) *Dep {
	return &Dep{key: key}
}

func (d *Dep) Key() string {
	return d.key
}

// AddSub appends sub. Adding the same subscriber twice means it is notified
// twice.
func (d *Dep) AddSub(sub Subscriber) {
	d.subs = append(d.subs, sub)
	if r, ok := sub.(depRecorder); ok {
		r.recordDep(d)
	}
}

// Notify calls Update on every subscriber in the order they were added.
func (d *Dep) Notify() {
	for _, sub := range d.subs {
		sub.Update()
	}
}

func (d *Dep) Subs() []Subscriber {
	subs := make([]Subscriber, len(d.subs))
	copy(subs, d.subs)
	return subs
}
