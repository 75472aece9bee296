package flappy

// Theme rotation: the background changes every ThemeEvery pairs cleared,
// cycling through ThemeVariants backgrounds.
const (
	ThemeEvery    = 10
	ThemeVariants = 7
)

// Score counts cleared obstacle pairs.
type Score struct {
	passes int
}

// Add records n pass events.
func (s *Score) Add(n int) {
	s.passes += n
}

// Value returns the displayed score.
func (s Score) Value() int {
	return s.passes
}

// Reset zeroes the counter.
func (s *Score) Reset() {
	s.passes = 0
}

// Theme returns the background variant for the current score.
func (s Score) Theme() int {
	return (s.passes / ThemeEvery) % ThemeVariants
}
