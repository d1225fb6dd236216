package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2/dialog"

	"github.com/ligun0805/evm-interactor/internal/interact"
)

// maxLogLines bounds the log view; older lines scroll out.
const maxLogLines = 2000

func formatLine(t time.Time, s string) string {
	return t.Format("15:04:05 ") + s + "\n"
}

// trimLines keeps the last n lines of text.
func trimLines(text string, n int) string {
	if strings.Count(text, "\n") <= n {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines[len(lines)-n:], "")
}

func (c *controller) appendLog(s string) {
	c.appendLine(formatLine(time.Now(), s))
}

func (c *controller) appendEvent(ev interact.Event) {
	c.appendLine(formatLine(ev.Time, ev.Message))
}

func (c *controller) appendLine(line string) {
	c.logBox.SetText(trimLines(c.logBox.Text+line, maxLogLines))
	if c.logScroll != nil {
		c.logScroll.ScrollToBottom()
	}
}

func (c *controller) setProgress(done, total int) {
	c.progress.Max = float64(max(total, 1))
	c.progress.SetValue(float64(done))
	c.progressLbl.SetText(fmt.Sprintf("%d/%d", done, total))
}

func (c *controller) exportJournal() {
	if c.journal.Len() == 0 {
		dialog.ShowInformation("Journal", "Nothing recorded yet.", c.win)
		return
	}
	path, err := c.journal.Export(c.st.LogDir)
	if err != nil {
		dialog.ShowError(fmt.Errorf("save journal: %w", err), c.win)
		return
	}
	dialog.ShowInformation("Saved", "Journal JSON saved to:\n"+path, c.win)
}
