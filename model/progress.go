package model

// CategoryProgress is one category slice of a progress snapshot.
type CategoryProgress struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

// ProgressSnapshot is the derived per-category and overall completion state.
// It carries no persisted state and is recomputed from the source collections.
type ProgressSnapshot struct {
	Habits  CategoryProgress `json:"habits"`
	Dailies CategoryProgress `json:"dailies"`
	Todos   CategoryProgress `json:"todos"`
	// CompletedTodos counts todos already in completed status. The Todos
	// slice above tracks only the active backlog, so its Completed field
	// stays at zero under normal transitions; this count gives UIs a
	// number worth showing.
	CompletedTodos int     `json:"completed_todos"`
	DailyProgress  float64 `json:"daily_progress"`
}
