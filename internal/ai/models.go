package ai

// TaskDraft is the structured metadata the model proposes for a free-text
// description. Every field is validated again by task.New before anything
// reaches the store.
type TaskDraft struct {
	Title       string   `json:"title" jsonschema:"description=Short task name"`
	Description string   `json:"description" jsonschema:"description=One or two sentence summary"`
	Duration    int      `json:"duration" jsonschema:"description=Estimated duration in minutes,minimum=5"`
	Priority    string   `json:"priority" jsonschema:"enum=low,enum=medium,enum=high,enum=critical"`
	Energy      string   `json:"energy" jsonschema:"enum=low,enum=medium,enum=high"`
	Effort      int      `json:"effort" jsonschema:"minimum=1,maximum=10"`
	Reward      int      `json:"reward" jsonschema:"minimum=1,maximum=10"`
	Flexibility string   `json:"flexibility" jsonschema:"enum=rigid,enum=semi_flexible,enum=flexible"`
	Tools       []string `json:"tools,omitempty" jsonschema:"description=Tools or resources the task needs"`
}
