package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed reports.yaml
var defaultCatalog []byte

type Column struct {
	Key    string `yaml:"key"`
	Header string `yaml:"header"`
	Expr   string `yaml:"expr"`
}

// Definition is one report: a fixed projection over Source with ordered headers.
type Definition struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Source  string   `yaml:"source"`
	Where   string   `yaml:"where"`
	OrderBy string   `yaml:"order_by"`
	Columns []Column `yaml:"columns"`
}

func (d Definition) Headers() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Header
	}
	return out
}

// Projections aliases every expression to its key, so row keys line up with headers.
func (d Definition) Projections() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = fmt.Sprintf("%s AS %q", c.Expr, c.Key)
	}
	return out
}

type Catalog struct {
	defs map[string]Definition
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Reports []Definition `yaml:"reports"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("report catalog: %w", err)
	}
	if len(doc.Reports) == 0 {
		return nil, fmt.Errorf("report catalog: no reports defined")
	}

	cat := &Catalog{defs: make(map[string]Definition, len(doc.Reports))}
	for _, d := range doc.Reports {
		if err := validate(d); err != nil {
			return nil, err
		}
		if _, dup := cat.defs[d.Name]; dup {
			return nil, fmt.Errorf("report catalog: duplicate report %q", d.Name)
		}
		cat.defs[d.Name] = d
	}
	return cat, nil
}

func validate(d Definition) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("report catalog: report without name")
	}
	if strings.TrimSpace(d.Source) == "" {
		return fmt.Errorf("report %q: source is required", d.Name)
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("report %q: no columns", d.Name)
	}
	seen := make(map[string]struct{}, len(d.Columns))
	for i, c := range d.Columns {
		if strings.TrimSpace(c.Expr) == "" {
			return fmt.Errorf("report %q: column %d has no expr", d.Name, i)
		}
		if strings.Contains(c.Key, `"`) {
			return fmt.Errorf("report %q: column key %q must not contain quotes", d.Name, c.Key)
		}
		if c.Key != strings.ToLower(c.Header) {
			return fmt.Errorf("report %q: header %q is not aligned with column key %q", d.Name, c.Header, c.Key)
		}
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("report %q: duplicate column key %q", d.Name, c.Key)
		}
		seen[c.Key] = struct{}{}
	}
	return nil
}

func (c *Catalog) Get(name string) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names is sorted, used in validation messages.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.defs))
	for n := range c.defs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
