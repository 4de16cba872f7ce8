package dom

// Event is a dispatched DOM event. Target is set by Dispatch.
type Event struct {
	Type   string
	Target *Node
}

type Listener func(e *Event)

func (n *Node) AddEventListener(eventType string, fn Listener) {
	st := n.doc.stateOf(n.n)
	if st.listeners == nil {
		st.listeners = map[string][]Listener{}
	}
	st.listeners[eventType] = append(st.listeners[eventType], fn)
}

// ListenerCount reports how many listeners are attached for eventType.
func (n *Node) ListenerCount(eventType string) int {
	st, ok := n.doc.state[n.n]
	if !ok {
		return 0
	}
	return len(st.listeners[eventType])
}

// Dispatch runs the node's listeners for e.Type synchronously, in the order
// they were added. Events do not bubble.
func (n *Node) Dispatch(e *Event) {
	e.Target = n
	st, ok := n.doc.state[n.n]
	if !ok {
		return
	}
	listeners := st.listeners[e.Type]
	for _, fn := range listeners {
		fn(e)
	}
}
