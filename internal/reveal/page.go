// Package reveal marks page sections visible as they scroll into view and fills
// progress bars when the skills section first appears.
package reveal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPage is wrapped by page validation failures.
var ErrInvalidPage = errors.New("invalid page")

// ClassList is an ordered set of class names. In YAML it may be written as a
// list or as a space separated string.
type ClassList []string

// Contains reports whether name is present.
func (c ClassList) Contains(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}

// Add inserts name if missing and reports whether the list changed.
func (c *ClassList) Add(name string) bool {
	if c.Contains(name) {
		return false
	}
	*c = append(*c, name)
	return true
}

// Remove deletes name and reports whether the list changed.
func (c *ClassList) Remove(name string) bool {
	for i, n := range *c {
		if n == name {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return true
		}
	}
	return false
}

// String joins the classes like a class attribute.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}

// UnmarshalYAML accepts "a b c" as well as [a, b, c].
func (c *ClassList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = strings.Fields(node.Value)
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*c = list
	return nil
}

// Style is the subset of inline style the page uses.
type Style struct {
	Width    float64 // percent of the parent track
	HasWidth bool
}

// WidthCSS renders Width like an inline style value, "" when unset.
func (s Style) WidthCSS() string {
	if !s.HasWidth {
		return ""
	}
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "%"
}

// Element is a node of the page tree.
type Element struct {
	ID       string            `yaml:"id"`
	Tag      string            `yaml:"tag"`
	Class    ClassList         `yaml:"class"`
	Data     map[string]string `yaml:"data"`
	Label    string            `yaml:"label"`
	Height   float64           `yaml:"height"`
	Children []*Element        `yaml:"children"`

	Style  Style    `yaml:"-"`
	Top    float64  `yaml:"-"` // document offset, set by Layout
	Parent *Element `yaml:"-"`
}

// Page is an ordered stack of sections.
type Page struct {
	Sections []*Element `yaml:"sections"`

	height float64
}

// ParsePage decodes a YAML page and lays it out.
func ParsePage(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPage, err)
	}
	if err := p.init(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPage reads a YAML page from path.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page %s: %w", path, err)
	}
	p, err := ParsePage(data)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return p, nil
}

// DefaultPage returns the built-in portfolio layout.
func DefaultPage() *Page {
	bar := func(id, label, progress string) *Element {
		return &Element{
			ID:    id,
			Tag:   "div",
			Class: ClassList{"progress-bar"},
			Data:  map[string]string{"progress": progress},
			Label: label,
		}
	}

	p := &Page{Sections: []*Element{
		{ID: "home", Label: "Home", Height: 720},
		{ID: "about", Label: "About", Height: 560},
		{ID: "skills", Label: "Skills", Height: 640, Children: []*Element{
			bar("skill-go", "Go", "90"),
			bar("skill-networking", "Networking", "80"),
			bar("skill-graphics", "Graphics", "75"),
			bar("skill-databases", "Databases", "65"),
		}},
		{ID: "projects", Label: "Projects", Height: 800},
		{ID: "contact", Label: "Contact", Height: 480},
	}}
	if err := p.init(); err != nil {
		panic(err)
	}
	return p
}

// init fills defaults, links parents, validates ids and lays sections out.
func (p *Page) init() error {
	if len(p.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidPage)
	}

	seen := make(map[string]bool)
	var walk func(el, parent *Element, defaultTag string) error
	walk = func(el, parent *Element, defaultTag string) error {
		if el == nil {
			return fmt.Errorf("%w: empty element", ErrInvalidPage)
		}
		if el.Tag == "" {
			el.Tag = defaultTag
		}
		el.Parent = parent
		if el.ID != "" {
			if seen[el.ID] {
				return fmt.Errorf("%w: duplicate id %q", ErrInvalidPage, el.ID)
			}
			seen[el.ID] = true
		}
		for _, child := range el.Children {
			if err := walk(child, el, "div"); err != nil {
				return err
			}
		}
		return nil
	}

	for _, s := range p.Sections {
		if err := walk(s, nil, "section"); err != nil {
			return err
		}
		if s.ID == "" {
			return fmt.Errorf("%w: section without id", ErrInvalidPage)
		}
		if s.Height < 0 {
			return fmt.Errorf("%w: section %q has negative height", ErrInvalidPage, s.ID)
		}
	}

	p.Layout()
	return nil
}

// Layout stacks the sections vertically in document order.
func (p *Page) Layout() {
	top := 0.0
	for _, s := range p.Sections {
		s.Top = top
		top += s.Height
	}
	p.height = top
}

// Height returns the total document height.
func (p *Page) Height() float64 {
	return p.height
}

// Section returns the section with id, or nil.
func (p *Page) Section(id string) *Element {
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// QueryClass returns every element carrying class, in document order.
func (p *Page) QueryClass(class string) []*Element {
	var out []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		if el.Class.Contains(class) {
			out = append(out, el)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	for _, s := range p.Sections {
		walk(s)
	}
	return out
}
