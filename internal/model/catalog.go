package model

import "strings"

// Catalog is the collection of all stored snippets, grouped by category.
type Catalog struct {
	Categories []Category `yaml:"categories" toml:"categories" xml:"category"`
}

// Category is a named group of snippets.
type Category struct {
	Name     string    `yaml:"name" toml:"name" xml:"name,attr"`
	Snippets []Snippet `yaml:"snippets" toml:"snippets" xml:"snippet"`
}

// Snippet is a named template text.
type Snippet struct {
	Name string `yaml:"name" toml:"name" xml:"name,attr"`
	Text string `yaml:"text" toml:"text" xml:",chardata"`
}

// Category returns the category with the given name, compared
// case-insensitively.
func (c *Catalog) Category(name string) (*Category, bool) {
	for i := range c.Categories {
		if strings.EqualFold(c.Categories[i].Name, name) {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// Snippet returns the snippet with the given name, compared
// case-insensitively.
func (c *Category) Snippet(name string) (*Snippet, bool) {
	for i := range c.Snippets {
		if strings.EqualFold(c.Snippets[i].Name, name) {
			return &c.Snippets[i], true
		}
	}
	return nil, false
}

// CategoryNames returns the names of all categories in order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// SnippetNames returns the names of all snippets in the category in order.
func (c *Category) SnippetNames() []string {
	names := make([]string, 0, len(c.Snippets))
	for _, s := range c.Snippets {
		names = append(names, s.Name)
	}
	return names
}
