package platform

// Package platform contains OS integration glue: application data
// directories for the persisted timer state and system locale detection.
