package topk

// @Author KHighness
// @Update 2024-01-21

// TopK item.
type Item struct {
	Key   string
	Count uint32
}

// TopK algorithm interface.
type TopK interface {

	// Add adds an item to the list of top k.
	// It returns two values:
	//	- The first return value is the expelled item if any item was expelled.
	//	- The second return value represents if the item had been added successfully.
	Add(item string, incr uint32) (string, bool)

	// List returns all the items in the top k, heaviest first.
	List() []Item

	// Max returns the heaviest tracked item.
	Max() (Item, bool)

	// Min returns the lightest tracked item, the admission threshold.
	Min() (Item, bool)

	// Total returns the total count of the items.
	Total() uint64

	// Expelled watches at the expelled items.
	Expelled() <-chan Item

	// Fading halves all counts to age out stale items.
	Fading()
}
