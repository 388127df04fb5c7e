package readline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or
	// the input ends.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// readMu keeps Readers that were not created WithForcedAccess from
// reading at the same time.
var readMu sync.Mutex

// Config holds the configuration for a Reader.
type Config struct {
	Prefix        string         // Prompt (e.g., "$ ")
	Completer     AutoCompleter  // Completion source (nil for none)
	HistoryConfig *HistoryConfig // History configuration (nil for default)
	ColorScheme   *ColorScheme   // Color scheme (nil for default)
	KeyBindings   *KeyBindings   // Custom key bindings (nil for none)
	BindingsFile  string         // TOML file with more custom key bindings
	DefaultText   string         // Returned when the user submits a blank line
	HomeDir       string         // Directory "~" expands to (default: user home)

	DisableAutoCompletion bool
	DisableKillBuffer     bool
	DisableUndo           bool

	// ForcedAccess skips the process-wide lock taken around each read.
	// The caller must then make sure reads do not overlap.
	ForcedAccess bool
}

// Option represents a configuration option for a Reader.
type Option func(*Config)

// WithCompleter sets the completion source.
func WithCompleter(completer AutoCompleter) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithHistory configures history settings.
//
// Example:
//
//	readline.New("$ ", readline.WithHistory(&readline.HistoryConfig{
//		Enabled:    true,
//		MaxEntries: 100,
//		File:       "~/.myapp_history",
//	}))
func WithHistory(historyConfig *HistoryConfig) Option {
	return func(c *Config) {
		c.HistoryConfig = historyConfig
	}
}

// WithMemoryHistory keeps up to maxEntries lines in memory only.
func WithMemoryHistory(maxEntries int) Option {
	return func(c *Config) {
		if maxEntries <= 0 {
			maxEntries = defaultMaxEntries
		}
		c.HistoryConfig = &HistoryConfig{
			Enabled:    true,
			MaxEntries: maxEntries,
		}
	}
}

// WithFileHistory keeps up to maxEntries lines and stores them in file.
func WithFileHistory(file string, maxEntries int) Option {
	return func(c *Config) {
		if maxEntries <= 0 {
			maxEntries = defaultMaxEntries
		}
		c.HistoryConfig = &HistoryConfig{
			Enabled:     true,
			MaxEntries:  maxEntries,
			File:        file,
			MaxFileSize: defaultMaxFileSize,
			MaxBackups:  defaultMaxBackups,
		}
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyBindings adds custom key bindings.
func WithKeyBindings(kb *KeyBindings) Option {
	return func(c *Config) {
		c.KeyBindings = kb
	}
}

// WithBindingsFile adds the custom key bindings stored in a TOML file.
// See LoadKeyBindings for the format.
func WithBindingsFile(path string) Option {
	return func(c *Config) {
		c.BindingsFile = path
	}
}

// WithAutoCompletion turns completion on (the default) or off.
func WithAutoCompletion(enabled bool) Option {
	return func(c *Config) {
		c.DisableAutoCompletion = !enabled
	}
}

// WithKillBuffer turns the kill buffer on (the default) or off.
func WithKillBuffer(enabled bool) Option {
	return func(c *Config) {
		c.DisableKillBuffer = !enabled
	}
}

// WithUndo turns undo on (the default) or off.
func WithUndo(enabled bool) Option {
	return func(c *Config) {
		c.DisableUndo = !enabled
	}
}

// WithDefaultText sets the value returned for a blank line.
func WithDefaultText(text string) Option {
	return func(c *Config) {
		c.DefaultText = text
	}
}

// WithHomeDir sets the directory that Alt+& expands "~" to.
func WithHomeDir(dir string) Option {
	return func(c *Config) {
		c.HomeDir = dir
	}
}

// WithForcedAccess lets reads skip the process-wide lock.
func WithForcedAccess() Option {
	return func(c *Config) {
		c.ForcedAccess = true
	}
}

// Reader reads edited lines from the terminal.
type Reader struct {
	config   Config
	terminal terminalInterface
	output   io.Writer
	// lines is set instead of terminal when stdin is not a terminal.
	lines    *bufio.Reader
	history  *HistoryManager
	bindings *KeyBindings
	decoder  *keyDecoder

	keys      chan keyEvent
	done      chan struct{}
	pumpOnce  sync.Once
	closeOnce sync.Once
	readErr   error

	handler *KeyHandler
}

type keyEvent struct {
	key Key
	err error
}

// New creates a Reader that shows prefix as its prompt.
//
// When stdin is not a terminal the Reader reads plain lines without
// editing, so piped input still works.
//
// Example:
//
//	r, err := readline.New("$ ",
//		readline.WithCompleter(readline.NewFuzzyCompleter([]string{"git", "go"})),
//		readline.WithMemoryHistory(100),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	line, err := r.Run()
func New(prefix string, options ...Option) (*Reader, error) {
	config := Config{Prefix: prefix}
	for _, option := range options {
		option(&config)
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		r, err := newFromConfig(config, nil)
		if err != nil {
			return nil, err
		}
		r.lines = bufio.NewReader(os.Stdin)
		r.output = os.Stdout
		return r, nil
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	r, err := newFromConfig(config, terminal)
	if err != nil {
		terminal.Close()
		return nil, err
	}
	return r, nil
}

func newFromConfig(config Config, terminal terminalInterface) (*Reader, error) {
	if config.HistoryConfig == nil {
		config.HistoryConfig = DefaultHistoryConfig()
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}

	bindings := config.KeyBindings
	if config.BindingsFile != "" {
		loaded, err := LoadKeyBindings(config.BindingsFile)
		if err != nil {
			return nil, err
		}
		if bindings, err = bindings.merge(loaded); err != nil {
			return nil, fmt.Errorf("failed to merge key bindings: %w", err)
		}
	}

	history := NewHistoryManager(config.HistoryConfig)
	if err := history.Load(); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	r := &Reader{
		config:   config,
		terminal: terminal,
		history:  history,
		bindings: bindings,
		done:     make(chan struct{}),
	}
	if terminal != nil {
		r.output = terminal.Output()
		r.decoder = newKeyDecoder(terminal)
	}
	return r, nil
}

// Run reads one line. It is RunWithContext with a background context.
func (r *Reader) Run() (string, error) {
	return r.RunWithContext(context.Background())
}

// RunWithContext reads one line, returning early with ctx.Err() when ctx
// is done. A line cut short this way is not returned and not added to the
// history; LastText still reports it.
//
// Enter or Ctrl+J submits the line, Ctrl+C returns ErrInterrupted and
// Ctrl+D on an empty line returns ErrEOF. A blank line yields the default
// text; any other line is added to the history.
//
// Keys are read by a goroutine that lives as long as the Reader. Between
// reads it may already hold the next key typed; that key is delivered to
// the following read rather than lost, but the terminal is not in raw mode
// while it waits, so it is echoed by the terminal as usual.
func (r *Reader) RunWithContext(ctx context.Context) (string, error) {
	return r.read(ctx, false, 0)
}

// ReadPassword reads one line without echoing it. Every character is shown
// as mask, or not at all when mask is 0.
//
// The line is never added to the history and is not reported by LastText.
// History keys do nothing, and completion, the kill buffer and undo are
// switched off for the read: Tab inserts a tab and kills only delete.
func (r *Reader) ReadPassword(ctx context.Context, mask rune) (string, error) {
	return r.read(ctx, true, mask)
}

// LastText returns the text of the line being edited when the most recent
// read ended. It is empty after ReadPassword.
func (r *Reader) LastText() string {
	if r.handler == nil {
		return ""
	}
	return r.handler.Text()
}

func (r *Reader) read(ctx context.Context, password bool, mask rune) (string, error) {
	if !r.config.ForcedAccess {
		readMu.Lock()
		defer readMu.Unlock()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.lines != nil {
		return r.readLine(password)
	}

	if err := r.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := r.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
		}
	}()

	width, _, _ := r.terminal.Size()
	var console *terminalConsole
	if password {
		console = newPasswordConsole(r.output, width, mask)
	} else {
		console = newTerminalConsole(r.output, width)
	}
	r.writePrompt(console, r.config.Prefix)

	h := NewKeyHandler(console, r.handlerConfig(console, password))
	r.handler = h
	if password {
		// The handler still holds the secret when the read ends.
		defer func() { r.handler = nil }()
	}
	r.startPump()

	for {
		ev, err := r.nextKey(ctx)
		if err != nil {
			console.newline()
			return "", err
		}

		switch {
		case ev.Is(KeyEnter, 0), ev.Is(KeyJ, ModCtrl):
			h.finish()
			console.newline()
			if err := console.Err(); err != nil {
				return "", fmt.Errorf("failed to render: %w", err)
			}
			return r.accept(h.Text(), password), nil

		case ev.Is(KeyC, ModCtrl):
			h.finish()
			console.WriteRaw("^C")
			console.newline()
			return "", ErrInterrupted

		case ev.Is(KeyD, ModCtrl) && h.Text() == "":
			console.newline()
			return "", ErrEOF

		default:
			h.Handle(ev)
		}

		if err := console.Err(); err != nil {
			return "", fmt.Errorf("failed to render: %w", err)
		}
	}
}

// handlerConfig builds the handler settings for one read. Password reads
// get no history, no completer, no kill buffer and no undo, so the secret
// is never copied out of the line being edited.
func (r *Reader) handlerConfig(console *terminalConsole, password bool) HandlerConfig {
	config := HandlerConfig{
		Bindings:              r.bindings,
		HomeDir:               r.homeDir,
		Prompt:                r.config.Prefix,
		WritePrompt:           func(p string) { r.writePrompt(console, p) },
		DisableAutoCompletion: r.config.DisableAutoCompletion,
		DisableKillBuffer:     r.config.DisableKillBuffer,
		DisableUndo:           r.config.DisableUndo,
	}
	if password {
		config.DisableAutoCompletion = true
		config.DisableKillBuffer = true
		config.DisableUndo = true
		return config
	}
	config.History = r.history.Entries()
	config.Completer = r.config.Completer
	return config
}

// nextKey waits for a key or for ctx to be done. Once the input has failed
// every later call fails the same way.
func (r *Reader) nextKey(ctx context.Context) (Key, error) {
	if r.readErr == nil {
		select {
		case <-ctx.Done():
			return Key{}, ctx.Err()
		case ev := <-r.keys:
			if ev.err == nil {
				return ev.key, nil
			}
			r.readErr = ev.err
		}
	}
	if errors.Is(r.readErr, io.EOF) {
		return Key{}, ErrEOF
	}
	return Key{}, fmt.Errorf("failed to read input: %w", r.readErr)
}

// startPump starts the goroutine that reads keys for every later read. It
// runs until the input fails or the Reader is closed.
func (r *Reader) startPump() {
	r.pumpOnce.Do(func() {
		r.keys = make(chan keyEvent)
		go func() {
			for {
				k, err := r.decoder.ReadKey()
				select {
				case r.keys <- keyEvent{key: k, err: err}:
				case <-r.done:
					return
				}
				if err != nil {
					return
				}
			}
		}()
	})
}

// readLine reads a line from a non-terminal stdin.
func (r *Reader) readLine(password bool) (string, error) {
	if !password {
		fmt.Fprint(r.output, r.config.Prefix)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrEOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return r.accept(strings.TrimRight(line, "\r\n"), password), nil
}

func (r *Reader) accept(line string, password bool) string {
	if strings.TrimSpace(line) == "" {
		return r.config.DefaultText
	}
	if !password {
		r.history.Add(line)
	}
	return line
}

// writePrompt draws the prompt, or the argument indicator that temporarily
// replaces it, and selects the input style for the text after it.
func (r *Reader) writePrompt(console *terminalConsole, prompt string) {
	scheme := r.config.ColorScheme
	style := scheme.Prefix
	if prompt != r.config.Prefix {
		style = scheme.Argument
	}
	console.writeStyled(style, prompt)
	console.setStyle(scheme.Input)
}

func (r *Reader) homeDir() string {
	if r.config.HomeDir != "" {
		return r.config.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Close saves the history and releases the terminal. It is safe to call
// Close more than once.
func (r *Reader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.done)
		if saveErr := r.history.Save(); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", saveErr)
		}
		if r.terminal != nil {
			err = r.terminal.Close()
		}
	})
	return err
}

// GetHistory returns a copy of the history, oldest first.
func (r *Reader) GetHistory() []string {
	return r.history.Entries()
}

// AddHistory appends a line to the history.
func (r *Reader) AddHistory(line string) {
	r.history.Add(line)
}

// SetHistory replaces the history.
func (r *Reader) SetHistory(history []string) {
	r.history.Set(history)
}

// ClearHistory removes every history entry.
func (r *Reader) ClearHistory() {
	r.history.Clear()
}

// SetPrefix changes the prompt used by later reads.
func (r *Reader) SetPrefix(prefix string) {
	r.config.Prefix = prefix
}

// SetColorScheme changes the colors used by later reads.
func (r *Reader) SetColorScheme(scheme *ColorScheme) {
	if scheme == nil {
		scheme = ThemeDefault
	}
	r.config.ColorScheme = scheme
}

// SetCompleter changes the completion source used by later reads.
func (r *Reader) SetCompleter(completer AutoCompleter) {
	r.config.Completer = completer
}
