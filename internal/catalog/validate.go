package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// validateBooks performs all structural checks on a book list.
// Returns a combined error describing every problem found, or nil if valid.
func validateBooks(books []Book) error {
	if len(books) == 0 {
		return errors.New("catalog has no books")
	}

	var errs []string
	titles := make(map[string]bool, len(books))

	for _, b := range books {
		if strings.TrimSpace(b.Title) == "" {
			errs = append(errs, "book with empty title")
			continue
		}
		if titles[b.Title] {
			errs = append(errs, fmt.Sprintf("duplicate book title: %q", b.Title))
		}
		titles[b.Title] = true

		if !b.Category.Valid() {
			errs = append(errs, fmt.Sprintf("book %q has unknown category %q", b.Title, b.Category))
		}

		// Section names are the identity used by plans and progress.
		seen := make(map[string]bool)
		for _, ch := range b.Chapters {
			for _, s := range ch.Sections {
				if strings.TrimSpace(s) == "" {
					errs = append(errs, fmt.Sprintf("book %q chapter %q has an empty section", b.Title, ch.Title))
					continue
				}
				if seen[s] {
					errs = append(errs, fmt.Sprintf("book %q has duplicate section %q", b.Title, s))
				}
				seen[s] = true
			}
		}
		if len(seen) == 0 {
			errs = append(errs, fmt.Sprintf("book %q has no sections", b.Title))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
