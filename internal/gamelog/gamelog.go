// Package gamelog is the game's event log collaborator. Entries are
// tagged with a category, mirrored to slog, and retained in memory so a
// finished game can be exported as text or HTML. Logging never fails or
// blocks a turn.
package gamelog

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Category tags a log entry for filtering and report rendering.
type Category string

const (
	CategoryInfo         Category = "info"
	CategoryTransaction  Category = "transaction"
	CategoryPlayerUpdate Category = "player-update"
	CategoryBankrupted   Category = "bankrupted"
	CategoryTrade        Category = "trade"
)

// Entry is one recorded event.
type Entry struct {
	Seq      int       `json:"seq"`
	Category Category  `json:"category"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Logger records categorized game events.
type Logger struct {
	mu      sync.Mutex
	out     *slog.Logger
	entries []Entry
}

// New creates a Logger mirroring entries to out. A nil out uses the
// default slog logger.
func New(out *slog.Logger) *Logger {
	if out == nil {
		out = slog.Default()
	}
	return &Logger{out: out}
}

// Log records a message under the given category.
func (l *Logger) Log(c Category, msg string) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{
		Seq:      len(l.entries),
		Category: c,
		Message:  msg,
		At:       time.Now(),
	})
	l.mu.Unlock()
	l.out.Info(msg, "category", string(c))
}

// Logf records a formatted message under the given category.
func (l *Logger) Logf(c Category, format string, args ...any) {
	l.Log(c, fmt.Sprintf(format, args...))
}

// Info records a message under the default category.
func (l *Logger) Info(msg string) {
	l.Log(CategoryInfo, msg)
}

// Transaction records a cash movement between two parties.
func (l *Logger) Transaction(sender, receiver string, amount int) {
	l.Logf(CategoryTransaction, "Transaction: %s -- $%s --> %s",
		sender, humanize.Comma(int64(amount)), receiver)
}

// Entries returns a copy of everything recorded so far.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns up to n most recent entries.
func (l *Logger) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := 0
	if len(l.entries) > n {
		start = len(l.entries) - n
	}
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// SaveText writes the log as plain text, one entry per line.
func (l *Logger) SaveText(path string) error {
	var b strings.Builder
	for _, e := range l.Entries() {
		fmt.Fprintf(&b, "[%s] %s\n", e.Category, e.Message)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

var htmlReport = template.Must(template.New("log").Parse(`<!DOCTYPE html>
<html>
<head><title>Game Log</title>
<style>
body { font-family: monospace; }
table { border-collapse: collapse; }
td { border: 1px solid #ccc; padding: 2px 8px; }
.bankrupted { background: #fdd; }
.trade { background: #dfd; }
.transaction { background: #ddf; }
</style>
</head>
<body>
<h1>Game Log — {{len .}} entries</h1>
<table>
{{range .}}<tr class="{{.Category}}"><td>{{.Seq}}</td><td>{{.Category}}</td><td>{{.Message}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// SaveHTML writes the log as a standalone HTML report.
func (l *Logger) SaveHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log report: %w", err)
	}
	defer f.Close()
	return htmlReport.Execute(f, l.Entries())
}
