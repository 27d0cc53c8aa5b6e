package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Application directory layout
const (
	AppDirName       = "pomodoro-widget"
	StateFileName    = "state.db"
	AndroidFilesDir  = "/data/data/io.github.ytget.pomodoro/files"
	FallbackStateDir = "/tmp/pomodoro-widget"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs on Android.
// Fyne Android apps run as libdist.so, which GOOS alone does not reveal for
// some toolchains.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// GetAppDataDir returns the per-user directory the widget keeps its state in
func GetAppDataDir() (string, error) {
	if IsAndroid() {
		return AndroidFilesDir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, AppDirName), nil
}

// DefaultStatePath returns the state database location, falling back to a
// temporary directory when no user directory is available
func DefaultStatePath() string {
	dir, err := GetAppDataDir()
	if err != nil {
		dir = FallbackStateDir
	}
	return filepath.Join(dir, StateFileName)
}

// EnsureParentDir creates the directory holding path
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
