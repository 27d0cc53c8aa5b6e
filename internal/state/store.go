package state

// Store is a persisted key-value surface with change notification.
// It is the subset of fyne.Preferences the countdown needs.
type Store interface {
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
	FloatWithFallback(key string, fallback float64) float64
	SetFloat(key string, value float64)
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
	StringWithFallback(key, fallback string) string
	SetString(key string, value string)
	RemoveValue(key string)
	AddChangeListener(func())
}
