package wheel

// ItemCache memoizes rendered rows keyed by the item's value.
//
// A row is rebuilt only when the value at its index changes; the animated
// outputs are read from ItemMotion separately and are never cached.
type ItemCache[T comparable, R any] struct {
	build   func(Item[T]) R
	entries map[int]cacheEntry[T, R]
	builds  int
}

type cacheEntry[T comparable, R any] struct {
	value T
	row   R
}

// NewItemCache returns a cache that renders rows with build.
func NewItemCache[T comparable, R any](build func(Item[T]) R) *ItemCache[T, R] {
	return &ItemCache[T, R]{
		build:   build,
		entries: make(map[int]cacheEntry[T, R]),
	}
}

// Row returns the row for item, rebuilding it only when the value stored at
// item.Index differs from item.Value.
func (c *ItemCache[T, R]) Row(item Item[T]) R {
	if e, ok := c.entries[item.Index]; ok && e.value == item.Value {
		return e.row
	}
	row := c.build(item)
	c.builds++
	c.entries[item.Index] = cacheEntry[T, R]{value: item.Value, row: row}
	return row
}

// Builds returns how many times the build function has run.
func (c *ItemCache[T, R]) Builds() int {
	return c.builds
}

// Reset drops every cached row.
func (c *ItemCache[T, R]) Reset() {
	clear(c.entries)
}
