// Package view maps a countdown record to the widget's visual description and
// property menu. It holds no fyne types so any host can draw the tree.
package view
