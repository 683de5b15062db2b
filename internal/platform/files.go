package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	WindowsCmdFlag  = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// DefaultExportDirName is appended to the user's Downloads folder
const DefaultExportDirName = "sheets-csv"

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		// explorer exits non-zero even on success
		_ = exec.Command(ExplorerCommand, absPath).Run()
		return nil
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then falls back to common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenURL opens a URL in the default browser without waiting for it to exit
func OpenURL(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, rawURL)
	case OSWindows:
		cmd = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ClearFiles removes every plain file directly inside dirPath, including
// symlinks to files, and returns how many were removed. Subdirectories and
// their contents are left alone.
// Removal continues past individual failures; their errors are joined.
func ClearFiles(dirPath string) (int, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	removed := 0
	var errs []error
	for _, entry := range entries {
		path := filepath.Join(dirPath, entry.Name())
		if !isFile(entry, path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// isFile reports whether entry is a regular file, following symlinks. A link
// to a file counts as a file; removing it removes only the link.
func isFile(entry os.DirEntry, path string) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// DefaultSaveDir suggests an export folder under Downloads
func DefaultSaveDir() string {
	downloads, err := GetHomeDownloadsDir()
	if err != nil {
		return DefaultExportDirName
	}
	return filepath.Join(downloads, DefaultExportDirName)
}
