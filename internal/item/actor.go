package item

// Actor owns items
type Actor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Items []*Item `json:"items"`
}

// Item looks up an owned item by ID
func (a *Actor) Item(id string) *Item {
	for _, it := range a.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// AddItem attaches an item to the actor
func (a *Actor) AddItem(it *Item) {
	it.actor = a
	a.Items = append(a.Items, it)
}

// Link re-attaches every item to the actor, needed after decoding
func (a *Actor) Link() {
	for _, it := range a.Items {
		it.actor = a
	}
}
