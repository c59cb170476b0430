package timer

import "testing"

func TestCountdownStep(t *testing.T) {
	var c Countdown
	c.Start(2)

	if !c.Step() {
		t.Errorf("Expected first step to block")
	}
	if !c.Step() {
		t.Errorf("Expected second step to block")
	}
	if c.Step() {
		t.Errorf("Expected countdown to be finished")
	}
	if c.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", c.Remaining())
	}
}

func TestCountdownStartNegative(t *testing.T) {
	var c Countdown
	c.Start(-3)
	if c.Running() {
		t.Errorf("Expected negative start to clamp to zero, got %d", c.Remaining())
	}
}
