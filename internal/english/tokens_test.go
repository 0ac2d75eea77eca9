package english

import "testing"

func TestTokenizeStripsPunctuationForLookup(t *testing.T) {
	tokens := Tokenize("Start small, and stick-to-it (daily)!")

	want := []struct {
		text, lookup string
	}{
		{"Start", "Start"},
		{"small,", "small"},
		{"and", "and"},
		{"stick-to-it", "sticktoit"},
		{"(daily)!", "daily"},
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w.text || tokens[i].Lookup != w.lookup {
			t.Errorf("token %d: got %+v, expected %+v", i, tokens[i], w)
		}
	}
}

func TestTokenizeEmptyContent(t *testing.T) {
	if got := Tokenize("   \n\t "); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}

func TestTokenizePurePunctuation(t *testing.T) {
	tokens := Tokenize("wait ...")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Lookup != "" {
		t.Errorf("expected empty lookup for pure punctuation, got %q", tokens[1].Lookup)
	}
}
