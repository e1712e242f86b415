package handler

import (
	"fmt"
	"html/template"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"taskhub/internal/session"
)

// HomeHandler renders the per-role greeting panel: time-of-day greeting,
// display name, current date/time and a random motivational quote.
type HomeHandler struct {
	sessions     *session.Manager
	messagesPath string
	tmpl         *template.Template
}

func NewHomeHandler(sessions *session.Manager, templatesDir, messagesPath string) *HomeHandler {
	return &HomeHandler{
		sessions:     sessions,
		messagesPath: messagesPath,
		tmpl:         parsePage(templatesDir, "home.html"),
	}
}

func (h *HomeHandler) Page(w http.ResponseWriter, r *http.Request) {
	current, ok := h.sessions.Get(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	now := time.Now()
	data := pageData(r, current, "Home", "home")
	data["Greeting"] = greetingFor(now.Hour())
	data["Date"] = now.Format("02.01.2006")
	data["Time"] = now.Format("15:04:05")
	data["Quote"] = h.randomQuote()

	renderTemplate(w, h.tmpl, "home.html", data)
}

func greetingFor(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// randomQuote re-reads messages.txt on every request so an updated file shows
// up without a restart. Blank lines are skipped; a missing or empty file
// yields an empty quote.
func (h *HomeHandler) randomQuote() string {
	raw, err := os.ReadFile(h.messagesPath)
	if err != nil {
		fmt.Printf("failed to read %s: %v\n", h.messagesPath, err)
		return ""
	}

	var messages []string
	for _, line := range strings.Split(string(raw), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			messages = append(messages, trimmed)
		}
	}
	if len(messages) == 0 {
		return ""
	}
	return messages[rand.Intn(len(messages))]
}
