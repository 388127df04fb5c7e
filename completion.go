package readline

// AutoCompleter supplies completion candidates.
type AutoCompleter interface {
	// Separators returns the characters that end a word. Completion
	// replaces the text after the last separator before the cursor.
	Separators() []rune
	// Suggestions returns the replacements for text[index:], where index
	// is a byte offset into text. An empty result means no completion.
	Suggestions(text string, index int) []string
}

// CompleterFunc adapts a function to AutoCompleter.
type CompleterFunc struct {
	Seps []rune
	Func func(text string, index int) []string
}

// NewCompleter returns an AutoCompleter that splits words on seps (a space
// when seps is empty) and asks fn for suggestions.
func NewCompleter(seps []rune, fn func(text string, index int) []string) *CompleterFunc {
	if len(seps) == 0 {
		seps = []rune{' '}
	}
	return &CompleterFunc{Seps: seps, Func: fn}
}

func (c *CompleterFunc) Separators() []rune {
	return c.Seps
}

func (c *CompleterFunc) Suggestions(text string, index int) []string {
	if c.Func == nil {
		return nil
	}
	return c.Func(text, index)
}

// completionState cycles through the candidates of one completion.
type completionState struct {
	candidates []string
	start      int
	index      int
}

func (c *completionState) Active() bool {
	return c.candidates != nil
}

// Start activates the candidates; start is the rune offset of the word
// they replace.
func (c *completionState) Start(candidates []string, start int) {
	c.candidates = candidates
	c.start = start
	c.index = 0
}

func (c *completionState) Current() string {
	return c.candidates[c.index]
}

func (c *completionState) Next() string {
	c.index = (c.index + 1) % len(c.candidates)
	return c.Current()
}

func (c *completionState) Previous() string {
	c.index = (c.index - 1 + len(c.candidates)) % len(c.candidates)
	return c.Current()
}

func (c *completionState) Reset() {
	c.candidates = nil
	c.start = 0
	c.index = 0
}
