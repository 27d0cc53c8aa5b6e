// Package config holds the widget's settings: Fyne preferences for the
// desktop app and a YAML file for the headless command.
package config
