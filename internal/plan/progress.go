package plan

import "github.com/dohyeon0608/ReadQuest/internal/catalog"

// Progress is the completion state of a plan's range.
type Progress struct {
	Completed int
	Total     int
	Percent   float64
	Done      bool
}

// PlanProgress counts completed sections inside the plan's range.
func PlanProgress(book catalog.Book, p ReadingPlan, completed Completed) Progress {
	sections := p.Sections(book)
	prog := Progress{Total: len(sections)}
	if completed != nil {
		for _, s := range sections {
			if completed.Contains(s) {
				prog.Completed++
			}
		}
	}
	if prog.Total > 0 {
		prog.Percent = float64(prog.Completed) / float64(prog.Total) * 100
		prog.Done = prog.Completed == prog.Total
	}
	return prog
}
