package usecase

import (
	"context"
	"fmt"
	"log"
	"main/model"
	"main/services"
	"main/utils"
	"regexp"
	"strings"
	"time"
)

// taskType is the intermediate classification before a create command is
// assembled.
type taskType string

const (
	taskHabit   taskType = "habit"
	taskDaily   taskType = "daily"
	taskTodo    taskType = "todo"
	taskUnknown taskType = "unknown"
)

var progressKeywords = []string{
	"progress", "status", "how am i doing", "how's my progress",
	"show my progress", "check progress", "view progress", "see progress",
	"tell me my progress", "tell me about my progress", "what's my progress",
	"what is my progress", "stats", "statistics", "overview", "summary",
}

var listKeywords = []string{
	"show", "list", "what are my", "view", "see", "display", "show me",
	"tell me about",
}

var habitKeywords = []string{
	"habit", "routine", "regularly", "every day", "daily practice",
	"consistently",
}

var dailyKeywords = []string{
	"daily", "each day", "everyday", "weekday", "daily task", "daily goal",
}

var todoKeywords = []string{
	"todo", "task", "remind", "need to", "have to", "should", "must", "got to",
}

var fitnessKeywords = []string{
	"gym", "workout", "exercise", "training", "fitness", "cardio", "strength",
	"run", "running", "jog", "jogging", "lift", "lifting", "weights",
}

var (
	highPriorityPattern = regexp.MustCompile(`(?i)\b(urgent|asap|important|high priority|must|critical)\b`)
	lowPriorityPattern  = regexp.MustCompile(`(?i)\b(maybe|sometime|when possible|low priority)\b`)

	weekendPattern = regexp.MustCompile(`(?i)\bweekends?\b`)
	// Only the literal keyword; full day names fall through to the
	// per-day extraction below.
	weekdayPattern = regexp.MustCompile(`(?i)\bweekdays?\b`)

	todayPattern    = regexp.MustCompile(`(?i)\b(today|now|asap)\b`)
	tomorrowPattern = regexp.MustCompile(`(?i)\b(tomorrow|tmr)\b`)

	fillerPrefixPattern = regexp.MustCompile(`(?i)^(add|create|new|start|make|set up|remind me to|i need to|i want to|i have to|i should)\s*`)
	typeSuffixPattern   = regexp.MustCompile(`(?i)\s*(habit|daily|todo|task)$`)
)

var dayPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"Mon", regexp.MustCompile(`(?i)\bmon(day)?\b`)},
	{"Tue", regexp.MustCompile(`(?i)\btue(sday)?\b`)},
	{"Wed", regexp.MustCompile(`(?i)\bwed(nesday)?\b`)},
	{"Thu", regexp.MustCompile(`(?i)\bthu(rsday)?\b`)},
	{"Fri", regexp.MustCompile(`(?i)\bfri(day)?\b`)},
	{"Sat", regexp.MustCompile(`(?i)\bsat(urday)?\b`)},
	{"Sun", regexp.MustCompile(`(?i)\bsun(day)?\b`)},
}

var defaultDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

const fallbackReply = "I'm sorry, I couldn't process that request right now. Please try again."

type AssistantService struct {
	llm      services.TextGenerator
	habits   *HabitsService
	dailies  *DailiesService
	todos    *TodosService
	progress *ProgressService
	rewards  *RewardsService
}

func NewAssistantService(
	llm services.TextGenerator,
	habits *HabitsService,
	dailies *DailiesService,
	todos *TodosService,
	progress *ProgressService,
	rewards *RewardsService,
) *AssistantService {
	return &AssistantService{
		llm:      llm,
		habits:   habits,
		dailies:  dailies,
		todos:    todos,
		progress: progress,
		rewards:  rewards,
	}
}

// Parse classifies one free-form input into a structured command. The
// checks run in a fixed order and the first match wins: status vocabulary
// beats list vocabulary beats task creation. Parse never fails; anything
// unclassifiable, including generation trouble, degrades to a conversation
// command.
func (svc *AssistantService) Parse(ctx context.Context, input string) *model.Command {
	lowerInput := strings.ToLower(input)

	if containsAny(lowerInput, progressKeywords) {
		return &model.Command{Type: model.CommandStatus}
	}

	if containsAny(lowerInput, listKeywords) {
		return &model.Command{Type: model.CommandList, Category: listCategory(lowerInput)}
	}

	kind := classifyTask(lowerInput)
	if kind == taskUnknown {
		return &model.Command{Type: model.CommandConversation}
	}

	title, description := svc.generateTitleAndDescription(ctx, kind, input)

	switch kind {
	case taskHabit:
		return &model.Command{
			Type:        model.CommandCreateHabit,
			Title:       title,
			Description: description,
			Priority:    inferPriority(input),
		}
	case taskDaily:
		return &model.Command{
			Type:        model.CommandCreateDaily,
			Title:       title,
			Description: description,
			Priority:    inferPriority(input),
			Days:        inferDays(input),
		}
	default:
		return &model.Command{
			Type:        model.CommandCreateTodo,
			Title:       title,
			Description: description,
			Priority:    inferPriority(input),
			DueDate:     inferDueDate(input, time.Now()),
		}
	}
}

func containsAny(input string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(input, keyword) {
			return true
		}
	}
	return false
}

func listCategory(input string) model.ListCategory {
	switch {
	case strings.Contains(input, "habit"):
		return model.ListHabits
	case strings.Contains(input, "daily") || strings.Contains(input, "dailies"):
		return model.ListDailies
	case strings.Contains(input, "todo") || strings.Contains(input, "task"):
		return model.ListTodos
	}
	return model.ListAll
}

func classifyTask(input string) taskType {
	if containsAny(input, fitnessKeywords) || containsAny(input, habitKeywords) {
		return taskHabit
	}
	if containsAny(input, dailyKeywords) {
		return taskDaily
	}
	if containsAny(input, todoKeywords) {
		return taskTodo
	}
	return taskUnknown
}

// generateTitleAndDescription asks the completion API for a short title and
// a one-sentence description, falling back to the local heuristics when the
// API is unavailable or misbehaves.
func (svc *AssistantService) generateTitleAndDescription(ctx context.Context, kind taskType, input string) (string, string) {
	title, err := svc.llm.Generate(ctx, titlePrompt(kind), input, 0.3, 50)
	if err != nil {
		log.Printf("Title generation failed, using local fallback: %v", err)
		title = extractBasicTitle(input)
		return title, basicDescription(title)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = extractBasicTitle(input)
		return title, basicDescription(title)
	}

	description, err := svc.llm.Generate(ctx, descriptionPrompt(kind, title), input, 0.3, 50)
	if err != nil {
		log.Printf("Description generation failed, using local fallback: %v", err)
		return title, basicDescription(title)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = basicDescription(title)
	}
	return title, description
}

func titlePrompt(kind taskType) string {
	base := `Create a clear, concise title (2-4 words) that captures the essence of the task. Rules:
1. Start with an action verb
2. Be specific and descriptive
3. Use proper capitalization
4. No articles (a, an, the) at start
5. No unnecessary words`

	examples := map[taskType]string{
		taskHabit: `Examples:
"need to exercise" -> "Daily Exercise"
"want to read more" -> "Book Reading"
"should practice guitar" -> "Guitar Practice"
"meditate daily" -> "Morning Meditation"`,
		taskDaily: `Examples:
"check emails" -> "Email Management"
"review tasks" -> "Task Review"
"team standup" -> "Team Meeting"
"plan tomorrow" -> "Daily Planning"`,
		taskTodo: `Examples:
"buy groceries" -> "Grocery Shopping"
"finish report" -> "Project Report"
"call client" -> "Client Call"
"send invoice" -> "Invoice Submission"`,
	}

	example, ok := examples[kind]
	if !ok {
		example = examples[taskTodo]
	}
	return base + "\n\n" + example
}

func descriptionPrompt(kind taskType, title string) string {
	base := fmt.Sprintf(`Create a clear, actionable description for %q. Rules:
1. One concise sentence
2. Focus on specific actions or goals
3. Include measurable elements when possible
4. Be motivating but professional
5. No fluff or filler words`, title)

	examples := map[taskType]string{
		taskHabit: `Examples:
Complete 30 minutes of structured physical activity
Read 20 pages of current book
Practice mindfulness meditation for 10 minutes`,
		taskDaily: `Examples:
Process inbox and respond to priority messages
Review and update project tasks and deadlines
Plan key objectives and schedule for tomorrow`,
		taskTodo: `Examples:
Purchase items from weekly meal plan list
Complete quarterly performance analysis report
Discuss project milestones and next steps`,
	}

	example, ok := examples[kind]
	if !ok {
		example = examples[taskTodo]
	}
	return base + "\n\n" + example
}

// extractBasicTitle strips leading filler phrases and trailing type nouns,
// then title-cases each word.
func extractBasicTitle(input string) string {
	clean := fillerPrefixPattern.ReplaceAllString(input, "")
	clean = typeSuffixPattern.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	words := strings.Fields(clean)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

func basicDescription(title string) string {
	return fmt.Sprintf("Complete %s according to defined goals", strings.ToLower(title))
}

func inferPriority(input string) model.Priority {
	if highPriorityPattern.MatchString(input) {
		return model.PriorityHigh
	}
	if lowPriorityPattern.MatchString(input) {
		return model.PriorityLow
	}
	return model.PriorityMedium
}

func inferDays(input string) []string {
	if weekendPattern.MatchString(input) {
		return []string{"Sat", "Sun"}
	}
	if weekdayPattern.MatchString(input) {
		return defaultDays
	}

	var days []string
	for _, day := range dayPatterns {
		if day.pattern.MatchString(input) {
			days = append(days, day.label)
		}
	}
	if len(days) == 0 {
		return defaultDays
	}
	return days
}

// inferDueDate resolves today/tomorrow mentions to a date, defaulting to
// tomorrow.
func inferDueDate(input string, now time.Time) string {
	if todayPattern.MatchString(input) {
		return now.Format("2006-01-02")
	}
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}

// AssistantReply is one executed assistant turn: the interpreted command,
// a spoken-style response, and any entity or reward the turn produced.
type AssistantReply struct {
	Command  *model.Command          `json:"command"`
	Response string                  `json:"response"`
	Habits   []*model.Habit          `json:"habits,omitempty"`
	Dailies  []*model.Daily          `json:"dailies,omitempty"`
	Todos    []*model.Todo           `json:"todos,omitempty"`
	Progress *model.ProgressSnapshot `json:"progress,omitempty"`
}

// Respond interprets the input and carries the command out against the
// user's data. It never propagates a failure as an error to the transport:
// trouble degrades to an apologetic conversation reply.
func (svc *AssistantService) Respond(ctx context.Context, userID, input string) *AssistantReply {
	command := svc.Parse(ctx, input)
	utils.AssistantCommandsTotal.WithLabelValues(string(command.Type)).Inc()

	reply := &AssistantReply{Command: command}

	switch command.Type {
	case model.CommandStatus:
		svc.respondStatus(ctx, userID, reply)
	case model.CommandList:
		svc.respondList(ctx, userID, reply)
	case model.CommandCreateHabit:
		svc.respondCreateHabit(ctx, userID, reply)
	case model.CommandCreateDaily:
		svc.respondCreateDaily(ctx, userID, reply)
	case model.CommandCreateTodo:
		svc.respondCreateTodo(ctx, userID, reply)
	default:
		svc.respondConversation(ctx, userID, input, reply)
	}
	return reply
}

func (svc *AssistantService) respondStatus(ctx context.Context, userID string, reply *AssistantReply) {
	snapshot, err := svc.progress.GetUserProgress(ctx, userID)
	if err != nil {
		log.Printf("Assistant status lookup failed for user %s: %v", userID, err)
		reply.Command = &model.Command{Type: model.CommandConversation}
		reply.Response = fallbackReply
		return
	}
	reply.Progress = snapshot
	reply.Response = fmt.Sprintf(
		"You're at %.0f%% for today: habits %.0f%%, dailies %.0f%%, and %d completed todos. Keep it up!",
		snapshot.DailyProgress,
		snapshot.Habits.Percentage,
		snapshot.Dailies.Percentage,
		snapshot.CompletedTodos,
	)
}

func (svc *AssistantService) respondList(ctx context.Context, userID string, reply *AssistantReply) {
	var err error
	category := reply.Command.Category

	if category == model.ListHabits || category == model.ListAll {
		if reply.Habits, err = svc.habits.GetUserHabits(ctx, userID); err != nil {
			svc.degrade(reply, err)
			return
		}
	}
	if category == model.ListDailies || category == model.ListAll {
		if reply.Dailies, err = svc.dailies.GetUserDailies(ctx, userID); err != nil {
			svc.degrade(reply, err)
			return
		}
	}
	if category == model.ListTodos || category == model.ListAll {
		if reply.Todos, err = svc.todos.GetUserTodos(ctx, userID); err != nil {
			svc.degrade(reply, err)
			return
		}
	}

	reply.Response = fmt.Sprintf("Here's what I found: %d habits, %d dailies and %d todos.",
		len(reply.Habits), len(reply.Dailies), len(reply.Todos))
}

func (svc *AssistantService) respondCreateHabit(ctx context.Context, userID string, reply *AssistantReply) {
	habit := &model.Habit{
		UserID:      userID,
		Title:       reply.Command.Title,
		Description: reply.Command.Description,
	}
	if err := svc.habits.CreateHabit(ctx, habit); err != nil {
		svc.degrade(reply, err)
		return
	}
	reply.Habits = []*model.Habit{habit}
	reply.Response = fmt.Sprintf("Created the habit %q. Four hits a day keeps the slump away!", habit.Title)
}

func (svc *AssistantService) respondCreateDaily(ctx context.Context, userID string, reply *AssistantReply) {
	daily := &model.Daily{
		UserID:      userID,
		Title:       reply.Command.Title,
		Description: reply.Command.Description,
		Priority:    reply.Command.Priority,
		Days:        reply.Command.Days,
	}
	if err := svc.dailies.CreateDaily(ctx, daily); err != nil {
		svc.degrade(reply, err)
		return
	}
	reply.Dailies = []*model.Daily{daily}
	reply.Response = fmt.Sprintf("Created the daily %q for %s.", daily.Title, strings.Join(daily.Days, ", "))
}

func (svc *AssistantService) respondCreateTodo(ctx context.Context, userID string, reply *AssistantReply) {
	todo := &model.Todo{
		UserID:      userID,
		Title:       reply.Command.Title,
		Description: reply.Command.Description,
		Priority:    reply.Command.Priority,
	}
	if reply.Command.DueDate != "" {
		if due, err := time.Parse("2006-01-02", reply.Command.DueDate); err == nil {
			todo.DueDate = due
		}
	}
	if err := svc.todos.CreateTodo(ctx, todo); err != nil {
		svc.degrade(reply, err)
		return
	}
	reply.Todos = []*model.Todo{todo}
	reply.Response = fmt.Sprintf("Added %q to your todos, due %s.", todo.Title, reply.Command.DueDate)
}

func (svc *AssistantService) respondConversation(ctx context.Context, userID, input string, reply *AssistantReply) {
	system := svc.conversationSystemPrompt(ctx, userID)
	response, err := svc.llm.Generate(ctx, system, input, 0.7, 150)
	if err != nil {
		log.Printf("Assistant conversation generation failed: %v", err)
		reply.Response = fallbackReply
		return
	}
	reply.Response = strings.TrimSpace(response)
	if reply.Response == "" {
		reply.Response = fallbackReply
	}
}

func (svc *AssistantService) conversationSystemPrompt(ctx context.Context, userID string) string {
	prompt := `You are a professional AI assistant helping the user manage their tasks and progress.
Keep responses very concise and to the point, professional, and focused on productivity.
Maintain an encouraging but professional tone and keep responses under 2-3 sentences.`

	balance, err := svc.rewards.GetBalance(ctx, userID)
	if err != nil {
		return prompt
	}
	snapshot, err := svc.progress.GetUserProgress(ctx, userID)
	if err != nil {
		return prompt
	}
	return prompt + fmt.Sprintf(`

Current stats for the user (level %d, %d coins earned):
- habits at %.0f%% of today's hits
- %d of %d dailies completed
- %d active todos`,
		balance.Level, balance.TotalCoins,
		snapshot.Habits.Percentage,
		snapshot.Dailies.Completed, snapshot.Dailies.Total,
		snapshot.Todos.Total)
}

func (svc *AssistantService) degrade(reply *AssistantReply, err error) {
	log.Printf("Assistant command execution failed: %v", err)
	utils.TrackError("assistant", "execution_failed")
	reply.Command = &model.Command{Type: model.CommandConversation}
	reply.Response = fallbackReply
}
