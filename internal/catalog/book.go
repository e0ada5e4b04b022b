package catalog

// Category classifies a book and drives its reward multiplier.
type Category string

const (
	CategoryFiction   Category = "fiction"
	CategoryAcademic  Category = "academic"
	CategoryTechnical Category = "technical"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFiction,
		CategoryAcademic,
		CategoryTechnical,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryFiction, CategoryAcademic, CategoryTechnical:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFiction:
		return "Fiction"
	case CategoryAcademic:
		return "Academic"
	case CategoryTechnical:
		return "Technical Paper"
	default:
		return string(c)
	}
}

// Chapter is one entry of a book's table of contents.
type Chapter struct {
	Title    string   `yaml:"title"`
	Sections []string `yaml:"sections"`
}

// Book is a read-only catalog entry.
type Book struct {
	Title    string    `yaml:"title"`
	Category Category  `yaml:"category"`
	Chapters []Chapter `yaml:"chapters"`
}

// Sections flattens the table of contents into reading order.
func (b Book) Sections() []string {
	var out []string
	for _, ch := range b.Chapters {
		out = append(out, ch.Sections...)
	}
	return out
}

// IndexOf returns the position of section in reading order, or -1.
func (b Book) IndexOf(section string) int {
	i := 0
	for _, ch := range b.Chapters {
		for _, s := range ch.Sections {
			if s == section {
				return i
			}
			i++
		}
	}
	return -1
}

// SectionCount returns the number of sections in the book.
func (b Book) SectionCount() int {
	n := 0
	for _, ch := range b.Chapters {
		n += len(ch.Sections)
	}
	return n
}

// ChapterOf returns the title of the chapter holding section.
func (b Book) ChapterOf(section string) (string, bool) {
	for _, ch := range b.Chapters {
		for _, s := range ch.Sections {
			if s == section {
				return ch.Title, true
			}
		}
	}
	return "", false
}
