package arkanoid

import "testing"

func TestLivesLose(t *testing.T) {
	l := NewLives(3)

	if l.Lose(1) || l.Remaining() != 2 {
		t.Fatalf("after first loss: remaining %d", l.Remaining())
	}
	if l.Lose(1) || l.Remaining() != 1 {
		t.Fatalf("after second loss: remaining %d", l.Remaining())
	}
	if !l.Lose(1) {
		t.Fatal("third loss should report reaching zero")
	}
	if l.Lose(1) {
		t.Error("losing at zero must not report zero again")
	}
	if l.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", l.Remaining())
	}
}

func TestLivesLoseClamps(t *testing.T) {
	l := NewLives(3)
	if !l.Lose(5) {
		t.Error("losing more than remaining should reach zero")
	}
	if l.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", l.Remaining())
	}

	l = NewLives(2)
	if l.Lose(0) || l.Remaining() != 2 {
		t.Error("Lose(0) must be a no-op")
	}
}
