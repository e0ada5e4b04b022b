package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var defaultBooks []byte

// Catalog is an ordered, read-only set of books indexed by title.
type Catalog struct {
	books   []Book
	byTitle map[string]int
}

type catalogFile struct {
	Books []Book `yaml:"books"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultBooks))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded books.yaml: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Books)
}

// New builds a catalog from books after validating them.
func New(books []Book) (*Catalog, error) {
	if err := validateBooks(books); err != nil {
		return nil, err
	}
	c := &Catalog{
		books:   books,
		byTitle: make(map[string]int, len(books)),
	}
	for i, b := range books {
		c.byTitle[b.Title] = i
	}
	return c, nil
}

// Books returns all books in catalog order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Lookup finds a book by exact title.
func (c *Catalog) Lookup(title string) (Book, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// Titles returns book titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.books))
	for i, b := range c.books {
		out[i] = b.Title
	}
	return out
}
