package dictionary

import "github.com/roach88/fakery/internal/errdefs"

// Category returns the category with the given name.
func (d *Dictionary) Category(name string) (*Category, error) {
	c, ok := d.categories[name]
	if !ok {
		return nil, errdefs.CategoryNotFound(name)
	}
	return c, nil
}

// RawValue returns the unresolved value stored under category/key.
func (d *Dictionary) RawValue(category, key string) (RawValue, error) {
	c, err := d.Category(category)
	if err != nil {
		return nil, err
	}
	v, ok := c.Lookup(key)
	if !ok {
		return nil, errdefs.KeyNotFound(category, key)
	}
	return v, nil
}
