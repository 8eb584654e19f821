package domain

// Item is a secondary index entry: an attribute value and the ids of the
// games that have it, in input order.
type Item struct {
	Name  string `json:"name"`
	Games []int  `json:"games"`
}

// Count returns the number of games referencing the item
func (i *Item) Count() int {
	return len(i.Games)
}
