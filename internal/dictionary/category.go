package dictionary

// Category is a named, ordered mapping from key to RawValue.
//
// A Category reachable from a Dictionary is read-only. Categories built with
// NewCategory are only mutated by the merge in Build, which works on copies.
type Category struct {
	name   string
	keys   []string // Declaration order
	values map[string]RawValue
}

// Entry is a key/value pair for Category construction.
type Entry struct {
	Key   string
	Value RawValue
}

// E is a shorthand for Entry.
// Example: NewCategory("address", E("city", Candidates{"Springfield"}))
func E(key string, value RawValue) Entry {
	return Entry{Key: key, Value: value}
}

// NewCategory creates a Category from entries in order.
// A repeated key replaces the earlier value but keeps its position.
func NewCategory(name string, entries ...Entry) *Category {
	c := &Category{
		name:   name,
		values: make(map[string]RawValue, len(entries)),
	}
	for _, e := range entries {
		c.set(e.Key, e.Value)
	}
	return c
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Keys returns the keys in declaration order.
// The returned slice is a copy.
func (c *Category) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of keys.
func (c *Category) Len() int {
	return len(c.keys)
}

// Lookup returns the raw value stored under key.
func (c *Category) Lookup(key string) (RawValue, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Entries returns the key/value pairs in declaration order.
func (c *Category) Entries() []Entry {
	entries := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		entries[i] = Entry{Key: k, Value: c.values[k]}
	}
	return entries
}

func (c *Category) set(key string, value RawValue) {
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c *Category) clone() *Category {
	out := &Category{
		name:   c.name,
		keys:   make([]string, len(c.keys)),
		values: make(map[string]RawValue, len(c.values)),
	}
	copy(out.keys, c.keys)
	for k, v := range c.values {
		out.values[k] = v
	}
	return out
}
