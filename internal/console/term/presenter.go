// Package term is the reference terminal implementation of the console's
// presentation port, used by cmd/console. Real hosts supply their own.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"merchant-console/internal/console"
	"merchant-console/internal/console/view"
)

type Presenter struct {
	out io.Writer
	in  *bufio.Reader
}

func NewPresenter(out io.Writer, in io.Reader) *Presenter {
	return &Presenter{
		out: out,
		in:  bufio.NewReader(in),
	}
}

func (p *Presenter) RenderList(rows []view.PaymentRow) {
	for _, row := range rows {
		fmt.Fprintf(p.out, "%-14s  %-10s  %8s  %-30s  %s\n",
			row.ID,
			row.StatusLabel,
			row.Accessory,
			truncate(row.Title, 30),
			row.Subtitle,
		)
	}
}

func (p *Presenter) Notify(kind console.NoteKind, message string) {
	var prefix string
	switch kind {
	case console.NoteSuccess:
		prefix = "ok"
	case console.NoteError:
		prefix = "error"
	default:
		prefix = "info"
	}
	fmt.Fprintf(p.out, "[%s] %s\n", prefix, message)
}

// Confirm asks on the terminal and treats anything but an explicit yes as a
// decline, matching "Cancel and dismiss are equivalent".
func (p *Presenter) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
