package models

import "testing"

func TestLevelDerivedFromXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
	}
	for _, c := range cases {
		if got := (UserStats{XP: c.xp}).Level(); got != c.level {
			t.Errorf("xp=%d: expected level %d, got %d", c.xp, c.level, got)
		}
	}
}

func TestLevelProgressReturnsCurrentAndSpan(t *testing.T) {
	current, span := UserStats{XP: 250}.LevelProgress()
	if current != 50 {
		t.Errorf("expected 50 XP into the level, got %d", current)
	}
	if span != 100 {
		t.Errorf("expected a 100 XP level span, got %d", span)
	}

	current, span = UserStats{}.LevelProgress()
	if current != 0 || span != 100 {
		t.Errorf("fresh stats: expected 0/100, got %d/%d", current, span)
	}
}
