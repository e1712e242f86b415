package handler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGreetingFor(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}
	for _, c := range cases {
		if got := greetingFor(c.hour); got != c.want {
			t.Errorf("greetingFor(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestRandomQuoteSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	content := "\n\nOnly quote here\n\n   \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	h := &HomeHandler{messagesPath: path}
	if got := h.randomQuote(); got != "Only quote here" {
		t.Errorf("randomQuote = %q", got)
	}
}

func TestRandomQuoteMissingFile(t *testing.T) {
	h := &HomeHandler{messagesPath: filepath.Join(t.TempDir(), "absent.txt")}
	if got := h.randomQuote(); got != "" {
		t.Errorf("expected empty quote for missing file, got %q", got)
	}
}
