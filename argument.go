package readline

import "fmt"

const maxArgument = 1000000

// argumentPrefix accumulates a numeric repeat count typed before a command.
type argumentPrefix struct {
	digits    int
	hasDigits bool
	negative  bool
	entering  bool
}

func (a *argumentPrefix) Entering() bool  { return a.entering }
func (a *argumentPrefix) HasDigits() bool { return a.hasDigits }

// AddDigit appends a decimal digit to the count.
func (a *argumentPrefix) AddDigit(d int) {
	a.digits = min(a.digits*10+d, maxArgument)
	a.hasDigits = true
	a.entering = true
}

// StartNegative begins a negative count.
func (a *argumentPrefix) StartNegative() {
	a.negative = true
	a.entering = true
}

// Value is the count entered so far. A lone minus counts as -1.
func (a *argumentPrefix) Value() int {
	n := a.digits
	if a.negative {
		if !a.hasDigits {
			n = 1
		}
		n = -n
	}
	return n
}

// Count is how many times the next command runs: 1 when no count was
// entered, otherwise the value. Counts below 1 run the command zero times.
func (a *argumentPrefix) Count() int {
	if !a.entering {
		return 1
	}
	return max(a.Value(), 0)
}

// Indicator is the text shown in place of the prompt while entering.
func (a *argumentPrefix) Indicator() string {
	return fmt.Sprintf("(arg: %d) ", a.Value())
}

func (a *argumentPrefix) Reset() {
	*a = argumentPrefix{}
}
