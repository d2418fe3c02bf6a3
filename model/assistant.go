package model

// CommandType classifies a parsed assistant command.
type CommandType string

const (
	CommandCreateHabit  CommandType = "create_habit"
	CommandCreateDaily  CommandType = "create_daily"
	CommandCreateTodo   CommandType = "create_todo"
	CommandStatus       CommandType = "status"
	CommandList         CommandType = "list"
	CommandConversation CommandType = "conversation"
)

// ListCategory names the entity group a list command targets.
type ListCategory string

const (
	ListHabits  ListCategory = "habits"
	ListDailies ListCategory = "dailies"
	ListTodos   ListCategory = "todos"
	ListAll     ListCategory = "all"
)

// Command is the structured result of interpreting one free-form input.
type Command struct {
	Type        CommandType  `json:"type"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Priority    Priority     `json:"priority,omitempty"`
	Days        []string     `json:"days,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Category    ListCategory `json:"category,omitempty"`
}
