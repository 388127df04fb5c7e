package readline

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultMaxEntries  = 1000
	defaultMaxFileSize = 1024 * 1024
	defaultMaxBackups  = 3
)

// HistoryConfig controls which submitted lines are remembered and where
// they are stored.
//
// File may be absolute, relative to the working directory, or start with
// "~/". An empty File keeps history in memory only.
type HistoryConfig struct {
	Enabled     bool   // Remember submitted lines
	MaxEntries  int    // Entries kept; the oldest are dropped first (default: 1000)
	File        string // Where history is persisted (empty = memory only)
	MaxFileSize int64  // File size in bytes that triggers rotation (default: 1MB)
	MaxBackups  int    // Rotated files kept as File.1 .. File.N (default: 3)
}

// DefaultHistoryConfig returns an enabled, memory-only configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:     true,
		MaxEntries:  defaultMaxEntries,
		MaxFileSize: defaultMaxFileSize,
		MaxBackups:  defaultMaxBackups,
	}
}

// DefaultHistoryFile returns $XDG_CONFIG_HOME/readline/history, falling back
// to ~/.config/readline/history. It returns "" when neither can be found.
func DefaultHistoryFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "readline", "history")
}

// HistoryManager owns the list of submitted lines and its file.
type HistoryManager struct {
	config  HistoryConfig
	entries []string
}

// NewHistoryManager returns a manager for config. Zero limits are replaced
// by their defaults; a nil config means DefaultHistoryConfig.
func NewHistoryManager(config *HistoryConfig) *HistoryManager {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	c := *config
	if c.MaxEntries <= 0 {
		c.MaxEntries = defaultMaxEntries
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = defaultMaxFileSize
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = defaultMaxBackups
	}
	if c.File != "" {
		if path, err := expandHistoryPath(c.File); err == nil {
			c.File = path
		}
	}
	return &HistoryManager{config: c}
}

func (hm *HistoryManager) IsEnabled() bool {
	return hm.config.Enabled
}

// File returns the absolute path of the history file, or "".
func (hm *HistoryManager) File() string {
	return hm.config.File
}

// Load appends the entries stored in the history file. A missing file is
// not an error.
func (hm *HistoryManager) Load() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}
	f, err := os.Open(hm.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			hm.entries = append(hm.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	hm.trim()
	return nil
}

// Save writes the entries to the history file, rotating it first when it
// has grown past MaxFileSize.
func (hm *HistoryManager) Save() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}
	if err := hm.rotate(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}
	if dir := filepath.Dir(hm.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	if err := writeLines(hm.config.File, hm.entries); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Add appends a line. Blank lines and repeats of the newest entry are
// ignored.
func (hm *HistoryManager) Add(line string) {
	if !hm.config.Enabled || strings.TrimSpace(line) == "" {
		return
	}
	if n := len(hm.entries); n > 0 && hm.entries[n-1] == line {
		return
	}
	hm.entries = append(hm.entries, line)
	hm.trim()
}

// Entries returns a copy of the history, oldest first.
func (hm *HistoryManager) Entries() []string {
	if !hm.config.Enabled {
		return []string{}
	}
	return append([]string{}, hm.entries...)
}

// Set replaces the history.
func (hm *HistoryManager) Set(entries []string) {
	if !hm.config.Enabled {
		return
	}
	hm.entries = append([]string{}, entries...)
	hm.trim()
}

func (hm *HistoryManager) Clear() {
	hm.entries = nil
}

func (hm *HistoryManager) trim() {
	if over := len(hm.entries) - hm.config.MaxEntries; over > 0 {
		hm.entries = append([]string{}, hm.entries[over:]...)
	}
}

// rotate shifts File to File.1, File.1 to File.2 and so on once File is
// at least MaxFileSize bytes, and halves the entries kept in memory.
func (hm *HistoryManager) rotate() error {
	info, err := os.Stat(hm.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < hm.config.MaxFileSize {
		return nil
	}

	if hm.config.MaxBackups == 0 {
		return os.Truncate(hm.config.File, 0)
	}
	backup := func(i int) string { return hm.config.File + "." + strconv.Itoa(i) }
	if err := os.Remove(backup(hm.config.MaxBackups)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove oldest backup: %w", err)
	}
	for i := hm.config.MaxBackups - 1; i >= 1; i-- {
		if err := os.Rename(backup(i), backup(i+1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to rotate backup %d: %w", i, err)
		}
	}
	if err := os.Rename(hm.config.File, backup(1)); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	// Short histories are kept whole so the next save does not rotate
	// an almost empty file.
	if keep := len(hm.entries) / 2; keep >= 100 {
		hm.entries = append([]string{}, hm.entries[len(hm.entries)-keep:]...)
	}
	return nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// expandHistoryPath turns "~" and "~/..." into paths under the home
// directory and makes the result absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return abs, nil
}
