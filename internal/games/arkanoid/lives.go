package arkanoid

// Lives counts the remaining attempts in a run.
type Lives struct {
	n int
}

// NewLives creates a counter with n lives.
func NewLives(n int) Lives {
	return Lives{n: n}
}

// Remaining returns the number of lives left.
func (l Lives) Remaining() int {
	return l.n
}

// Lose removes up to amount lives and reports whether the counter reached
// zero with this call. The count never goes below zero.
func (l *Lives) Lose(amount int) bool {
	if l.n == 0 || amount <= 0 {
		return false
	}
	if amount >= l.n {
		l.n = 0
		return true
	}
	l.n -= amount
	return false
}
