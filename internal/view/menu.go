package view

import (
	"github.com/ytget/pomodoro-widget/internal/model"
)

// Property menu identifiers
const (
	MenuItemDropdown = "dropdown"
	MenuPropertyName = "timer"
	MenuTooltip      = "Timer"
)

// MenuOption is one dropdown entry
type MenuOption struct {
	Option string
	Label  string
}

// MenuItem is a property menu entry
type MenuItem struct {
	ItemType       string
	Tooltip        string
	PropertyName   string
	SelectedOption string
	Options        []MenuOption
}

// DurationMenu returns the property menu offering the duration labels
func DurationMenu(selected model.DurationLabel) []MenuItem {
	options := make([]MenuOption, 0, len(model.DurationLabels()))
	for _, label := range model.DurationLabels() {
		options = append(options, MenuOption{Option: label.String(), Label: label.MenuText()})
	}
	return []MenuItem{
		{
			ItemType:       MenuItemDropdown,
			Tooltip:        MenuTooltip,
			PropertyName:   MenuPropertyName,
			SelectedOption: selected.String(),
			Options:        options,
		},
	}
}

// DurationSelector is what the property menu drives
type DurationSelector interface {
	SelectDuration(label model.DurationLabel)
}

// HandleMenuChange routes a property menu event. Events for other properties and
// values outside the menu are ignored; it reports whether a selection was made.
func HandleMenuChange(propertyName, propertyValue string, s DurationSelector) bool {
	if propertyName != MenuPropertyName {
		return false
	}
	label, err := model.ParseDurationLabel(propertyValue)
	if err != nil {
		return false
	}
	s.SelectDuration(label)
	return true
}
