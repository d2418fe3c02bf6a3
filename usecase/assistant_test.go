package usecase

import (
	"context"
	"errors"
	"main/model"
	"reflect"
	"testing"
	"time"
)

// fakeGenerator returns canned text, or an error when broken.
type fakeGenerator struct {
	text   string
	err    error
	called int
}

func (f *fakeGenerator) Generate(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	f.called++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newParseOnlyAssistant(gen *fakeGenerator) *AssistantService {
	return NewAssistantService(gen, nil, nil, nil, nil, nil)
}

func TestParseStatusCommands(t *testing.T) {
	svc := newParseOnlyAssistant(&fakeGenerator{text: "Generated Title"})

	inputs := []string{
		"how am i doing today?",
		"show my progress",
		"give me an overview",
		"what are my stats",
	}

	for _, input := range inputs {
		command := svc.Parse(context.Background(), input)
		if command.Type != model.CommandStatus {
			t.Errorf("Parse(%q).Type = %q, want status", input, command.Type)
		}
	}
}

// Status vocabulary wins even when list words are present.
func TestParseStatusBeatsList(t *testing.T) {
	svc := newParseOnlyAssistant(&fakeGenerator{text: "Generated Title"})

	command := svc.Parse(context.Background(), "show me my progress summary")
	if command.Type != model.CommandStatus {
		t.Errorf("Type = %q, want status", command.Type)
	}
}

func TestParseListCommands(t *testing.T) {
	svc := newParseOnlyAssistant(&fakeGenerator{text: "Generated Title"})

	tests := []struct {
		name     string
		input    string
		category model.ListCategory
	}{
		{"habits list", "show me my habits", model.ListHabits},
		{"dailies list", "list my dailies", model.ListDailies},
		{"todos list", "what are my tasks", model.ListTodos},
		{"uncategorized list", "show me everything", model.ListAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command := svc.Parse(context.Background(), tt.input)
			if command.Type != model.CommandList {
				t.Fatalf("Type = %q, want list", command.Type)
			}
			if command.Category != tt.category {
				t.Errorf("Category = %q, want %q", command.Category, tt.category)
			}
		})
	}
}

func TestParseCreateCommands(t *testing.T) {
	svc := newParseOnlyAssistant(&fakeGenerator{text: "Generated Title"})

	tests := []struct {
		name  string
		input string
		want  model.CommandType
	}{
		{"fitness vocabulary makes a habit", "i want to start going to the gym", model.CommandCreateHabit},
		{"routine vocabulary makes a habit", "start a new meditation routine", model.CommandCreateHabit},
		{"daily vocabulary makes a daily", "add check emails each day", model.CommandCreateDaily},
		{"todo vocabulary makes a todo", "i need to buy groceries", model.CommandCreateTodo},
		{"small talk stays conversation", "hello there, how are you?", model.CommandConversation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command := svc.Parse(context.Background(), tt.input)
			if command.Type != tt.want {
				t.Errorf("Parse(%q).Type = %q, want %q", tt.input, command.Type, tt.want)
			}
		})
	}
}

// Fitness vocabulary takes precedence over the todo vocabulary, so "i need
// to work out" builds a habit.
func TestParseFitnessBeatsTodo(t *testing.T) {
	svc := newParseOnlyAssistant(&fakeGenerator{text: "Generated Title"})

	command := svc.Parse(context.Background(), "i need to do a workout")
	if command.Type != model.CommandCreateHabit {
		t.Errorf("Type = %q, want create_habit", command.Type)
	}
}

func TestParseUsesGeneratedTitle(t *testing.T) {
	gen := &fakeGenerator{text: "Morning Meditation"}
	svc := newParseOnlyAssistant(gen)

	command := svc.Parse(context.Background(), "start a meditation habit")
	if command.Title != "Morning Meditation" {
		t.Errorf("Title = %q, want the generated title", command.Title)
	}
	if gen.called == 0 {
		t.Error("expected the generator to be called")
	}
}

func TestParseFallsBackToLocalTitle(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("api down")}
	svc := newParseOnlyAssistant(gen)

	command := svc.Parse(context.Background(), "start a meditation habit")
	if command.Type != model.CommandCreateHabit {
		t.Fatalf("Type = %q, want create_habit", command.Type)
	}
	if command.Title == "" {
		t.Error("fallback title should not be empty")
	}
	if command.Description == "" {
		t.Error("fallback description should not be empty")
	}
}

func TestExtractBasicTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips leading filler", "add buy groceries", "Buy Groceries"},
		{"strips remind me to", "remind me to call mom", "Call Mom"},
		{"strips trailing type noun", "create reading habit", "Reading"},
		{"title cases every word", "finish the quarterly report", "Finish The Quarterly Report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBasicTitle(tt.input); got != tt.want {
				t.Errorf("extractBasicTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInferPriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Priority
	}{
		{"urgent is high", "urgent: finish the report", model.PriorityHigh},
		{"critical is high", "this is critical", model.PriorityHigh},
		{"maybe is low", "maybe clean the garage sometime", model.PriorityLow},
		{"default is medium", "buy groceries", model.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferPriority(tt.input); got != tt.want {
				t.Errorf("inferPriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInferDays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"weekend pattern", "stretch on the weekend", []string{"Sat", "Sun"}},
		{"weekday pattern", "stand up every weekday", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}},
		{"explicit days", "review notes on monday and thursday", []string{"Mon", "Thu"}},
		{"single full day name stays specific", "team retro every friday", []string{"Fri"}},
		{"weekend day names resolve per day", "long run on saturday", []string{"Sat"}},
		{"abbreviated days", "water plants wed and fri", []string{"Wed", "Fri"}},
		{"no mention defaults to weekdays", "check emails", []string{"Mon", "Tue", "Wed", "Thu", "Fri"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferDays(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inferDays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInferDueDate(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today keyword", "pay rent today", "2025-03-14"},
		{"asap keyword", "send the invoice asap", "2025-03-14"},
		{"tomorrow keyword", "call the dentist tomorrow", "2025-03-15"},
		{"default is tomorrow", "buy groceries", "2025-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferDueDate(tt.input, now); got != tt.want {
				t.Errorf("inferDueDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
