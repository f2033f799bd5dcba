package catalog

// Listener is notified with the new snapshot after the filter state changes.
type Listener func(FilterState)

// TagOption is a tag control: its count, whether it is enabled, and the state
// that toggling it would produce.
type TagOption struct {
	Name    string
	Count   int
	Enabled bool
	Toggled FilterState
}

// Controller owns the filter state of a single page view. Changes notify listeners
// synchronously; derived views are recomputed when asked for. It is not safe for
// concurrent use.
type Controller struct {
	store     *Store
	state     FilterState
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewController starts a page view over store with the given initial state.
func NewController(store *Store, initial FilterState) *Controller {
	if store == nil {
		store = NewStore(nil)
	}
	return &Controller{
		store:     store,
		state:     initial,
		listeners: map[int]Listener{},
	}
}

// Store returns the content store the controller reads from.
func (c *Controller) Store() *Store { return c.store }

// State returns the current snapshot.
func (c *Controller) State() FilterState { return c.state }

// Subscribe registers fn and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.order = append(c.order, id)
	return func() {
		delete(c.listeners, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Toggle flips tag and notifies listeners.
func (c *Controller) Toggle(tag string) {
	c.apply(c.state.Toggle(tag))
}

// Set enables or disables tag. Listeners are only notified when the state changes.
func (c *Controller) Set(tag string, on bool) {
	c.apply(c.state.Set(tag, on))
}

func (c *Controller) apply(next FilterState) {
	if next.Equal(c.state) {
		return
	}
	c.state = next
	for _, id := range c.order {
		if fn := c.listeners[id]; fn != nil {
			fn(next)
		}
	}
}

// View computes the filtered article list for the current state.
func (c *Controller) View() []*Article {
	return Filter(c.store, c.state)
}

// Options lists a control for each indexed tag in first-occurrence order.
func (c *Controller) Options() []TagOption {
	entries := c.store.Tags().Entries()
	out := make([]TagOption, 0, len(entries))
	for _, e := range entries {
		out = append(out, TagOption{
			Name:    e.Name,
			Count:   e.Count,
			Enabled: c.state.Enabled(e.Name),
			Toggled: c.state.Toggle(e.Name),
		})
	}
	return out
}
