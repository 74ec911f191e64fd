package game

import "fmt"

// CardRegistry maps card names to their definitions.
var CardRegistry = func() map[string]*Card {
	m := make(map[string]*Card, len(catalog))
	for _, c := range catalog {
		m[c.Name] = c
	}
	return m
}()

// Catalog returns every card definition in catalog order.
func Catalog() []*Card {
	return append([]*Card(nil), catalog...)
}

// LookupCard returns the card with the given name.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	c, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return c
}

// FindCard returns the card with the given name, or an error.
func FindCard(name string) (*Card, error) {
	c, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown card %q", name)
	}
	return c, nil
}
