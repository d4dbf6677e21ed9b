package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":     {"ctrl+b", "show/hide commands"},
	"QuitApp":      {"q", "quit"},
	"ToggleStatus": {"space", "toggle completed"},
	"AddTask":      {"a", "add task"},
	"EditTask":     {"e", "edit task"},
	"DeleteTask":   {"d", "delete task"},
	"SearchTasks":  {"/", "search tasks"},
	"ClearSearch":  {"ctrl+x", "clear search"},
	"CycleFilter":  {"f", "cycle status filter"},
	"ToggleTheme":  {"ctrl+t", "toggle dark mode"},
	"Logout":       {"ctrl+l", "log out"},
}

type KeyMap struct {
	ShowHelp     key.Binding
	QuitApp      key.Binding
	ToggleStatus key.Binding
	AddTask      key.Binding
	EditTask     key.Binding
	DeleteTask   key.Binding
	SearchTasks  key.Binding
	ClearSearch  key.Binding
	CycleFilter  key.Binding
	ToggleTheme  key.Binding
	Logout       key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleStatus":
			km.ToggleStatus = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddTask":
			km.AddTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditTask":
			km.EditTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteTask":
			km.DeleteTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SearchTasks":
			km.SearchTasks = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ClearSearch":
			km.ClearSearch = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleFilter":
			km.CycleFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleTheme":
			km.ToggleTheme = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Logout":
			km.Logout = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
