package lookup

import "github.com/atomicstack/estate-finder/internal/dataset"

// Controller owns the lookup state for one view and keeps the derived result
// list current. It is not safe for concurrent use; the UI event loop is its
// only caller.
type Controller struct {
	data    *dataset.Dataset
	state   State
	items   []Item
	display Display
}

// New creates a controller over ds. The initial district is defaultDistrict
// when present, otherwise the first district, otherwise empty.
func New(ds *dataset.Dataset, defaultDistrict string) *Controller {
	if ds == nil {
		ds = dataset.Empty()
	}
	c := &Controller{data: ds}
	c.state.District = initialDistrict(ds, defaultDistrict)
	c.recompute()
	return c
}

func initialDistrict(ds *dataset.Dataset, preferred string) string {
	if ds.Has(preferred) {
		return preferred
	}
	if districts := ds.Districts(); len(districts) > 0 {
		return districts[0]
	}
	return ""
}

// SelectDistrict handles a district change. Returns false when nothing changed.
func (c *Controller) SelectDistrict(district string) bool {
	return c.apply(c.state.WithDistrict(district))
}

// SelectPianqu handles the sub-district selector.
func (c *Controller) SelectPianqu(pianqu string) bool {
	return c.apply(c.state.WithPianqu(pianqu))
}

// SetSearch handles typing into the search field.
func (c *Controller) SetSearch(text string) bool {
	return c.apply(c.state.WithSearch(text))
}

// ClearSearch handles the explicit clear action.
func (c *Controller) ClearSearch() bool {
	return c.apply(c.state.WithoutSearch())
}

// Focus marks the search field as focused.
func (c *Controller) Focus() bool {
	return c.apply(c.state.WithFocus(true))
}

// Blur marks the search field as unfocused.
func (c *Controller) Blur() bool {
	return c.apply(c.state.WithFocus(false))
}

func (c *Controller) apply(next State) bool {
	if next == c.state {
		return false
	}
	prev := c.state
	c.state = next
	if prev.District != next.District || prev.Mode != next.Mode {
		c.recompute()
	}
	return true
}

func (c *Controller) recompute() {
	c.items, c.display = Derive(c.state, c.data)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Results returns the derived result list. Callers must not modify it.
func (c *Controller) Results() []Item {
	return c.items
}

// Display returns the derived display state.
func (c *Controller) Display() Display {
	return c.display
}

// Heading returns the title for the current result list.
func (c *Controller) Heading() string {
	return Heading(c.items)
}

// Districts lists all districts in dataset order.
func (c *Controller) Districts() []string {
	return c.data.Districts()
}

// Pianqus lists the sub-districts of the selected district.
func (c *Controller) Pianqus() []string {
	return c.data.Pianqus(c.state.District)
}

// PianquCount is the number of sub-districts in the selected district.
func (c *Controller) PianquCount() int {
	return c.data.Count(c.state.District)
}
