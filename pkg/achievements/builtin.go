package achievements

// EngineAchievement is an engine-wide milestone driven by the cumulative
// stat counters.
type EngineAchievement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon,omitempty"`
	Secret      bool        `json:"secret,omitempty"`
	Trigger     StatTrigger `json:"trigger"`
}

// EngineAchievements is the fixed engine-wide achievement set, checked
// whenever a stat counter changes.
var EngineAchievements = []EngineAchievement{
	{
		ID:          "first_adventure",
		Title:       "First Steps",
		Description: "Start your first adventure",
		Icon:        "flag",
		Trigger:     StatTrigger{Stat: StatAdventuresStarted, AtLeast: 1},
	},
	{
		ID:          "adventure_enthusiast",
		Title:       "Adventure Enthusiast",
		Description: "Start 5 different adventures",
		Icon:        "compass",
		Trigger:     StatTrigger{Stat: StatAdventuresStarted, AtLeast: 5},
	},
	{
		ID:          "adventure_master",
		Title:       "Adventure Master",
		Description: "Start 10 different adventures",
		Icon:        "mountain",
		Trigger:     StatTrigger{Stat: StatAdventuresStarted, AtLeast: 10},
	},
	{
		ID:          "first_completion",
		Title:       "Mission Accomplished",
		Description: "Complete your first adventure",
		Icon:        "trophy",
		Trigger:     StatTrigger{Stat: StatAdventuresCompleted, AtLeast: 1},
	},
	{
		ID:          "completion_master",
		Title:       "Completionist",
		Description: "Complete 5 different adventures",
		Icon:        "award",
		Trigger:     StatTrigger{Stat: StatAdventuresCompleted, AtLeast: 5},
	},
	{
		ID:          "command_novice",
		Title:       "Command Novice",
		Description: "Enter 50 commands",
		Icon:        "keyboard",
		Trigger:     StatTrigger{Stat: StatCommandsEntered, AtLeast: 50},
	},
	{
		ID:          "command_expert",
		Title:       "Command Expert",
		Description: "Enter 200 commands",
		Icon:        "terminal",
		Trigger:     StatTrigger{Stat: StatCommandsEntered, AtLeast: 200},
	},
	{
		ID:          "command_master",
		Title:       "Command Master",
		Description: "Enter 500 commands",
		Icon:        "code",
		Trigger:     StatTrigger{Stat: StatCommandsEntered, AtLeast: 500},
	},
	{
		ID:          "autocomplete_user",
		Title:       "Quick Typer",
		Description: "Use autocomplete 10 times",
		Icon:        "bolt",
		Trigger:     StatTrigger{Stat: StatAutoCompleteUsed, AtLeast: 10},
	},
	{
		ID:          "autocomplete_expert",
		Title:       "Efficiency Expert",
		Description: "Use autocomplete 50 times",
		Icon:        "gauge",
		Trigger:     StatTrigger{Stat: StatAutoCompleteUsed, AtLeast: 50},
	},
	{
		ID:          "collector",
		Title:       "Collector",
		Description: "Take 25 items across all adventures",
		Icon:        "bag",
		Trigger:     StatTrigger{Stat: StatItemsTaken, AtLeast: 25},
	},
	{
		ID:          "hoarder",
		Title:       "Hoarder",
		Description: "Take 100 items across all adventures",
		Icon:        "boxes",
		Trigger:     StatTrigger{Stat: StatItemsTaken, AtLeast: 100},
	},
	{
		ID:          "explorer",
		Title:       "Explorer",
		Description: "Visit 50 different rooms",
		Icon:        "door",
		Trigger:     StatTrigger{Stat: StatRoomsVisited, AtLeast: 50},
	},
	{
		ID:          "cartographer",
		Title:       "Cartographer",
		Description: "Visit 100 different rooms",
		Icon:        "map",
		Trigger:     StatTrigger{Stat: StatRoomsVisited, AtLeast: 100},
	},
}
