package task

// Filter values understood by Matches. Anything else is treated as "all".
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
)

// Matches reports whether t is visible under filter.
func Matches(t Task, filter string) bool {
	switch filter {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Filtered returns the tasks matching filter in list order.
func (l *List) Filtered(filter string) []Task {
	return Filter(l.tasks, filter)
}

func Filter(tasks []Task, filter string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, filter) {
			out = append(out, t)
		}
	}
	return out
}
