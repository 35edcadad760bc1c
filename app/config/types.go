package config

// Source is one external feed endpoint contributing articles to a category.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Category is a named grouping of feed sources sharing one display context.
type Category struct {
	Key     string   `yaml:"key"`
	Name    string   `yaml:"name"`
	Icon    string   `yaml:"icon"`
	Sources []Source `yaml:"sources"`
}

// Config holds the full static source table, loaded once at process start
// and never mutated afterwards.
type Config struct {
	Categories []Category          `yaml:"categories"`
	Groups     map[string][]string `yaml:"groups"`
}

// CategoryByKey returns the category with the given key, or nil.
func (c *Config) CategoryByKey(key string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Key == key {
			return &c.Categories[i]
		}
	}
	return nil
}

// GroupKeys returns the ordered category keys behind a group alias.
func (c *Config) GroupKeys(name string) ([]string, bool) {
	keys, ok := c.Groups[name]
	return keys, ok
}

// SourceCount returns the total number of configured sources across all categories.
func (c *Config) SourceCount() int {
	count := 0
	for _, cat := range c.Categories {
		count += len(cat.Sources)
	}
	return count
}
