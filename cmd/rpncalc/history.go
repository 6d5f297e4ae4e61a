package main

import (
	"fmt"
	"io"

	"github.com/edwingeng/deque"
)

// histSize is the number of lines the history command shows.
const histSize = 20

type histEntry struct {
	n    int
	line string
}

// history holds the most recent input lines, oldest first.
type history struct {
	lines deque.Deque // <histEntry>
	n     int
}

func newHistory() *history {
	return &history{lines: deque.NewDeque()}
}

func (h *history) add(line string) {
	h.n++
	h.lines.PushBack(histEntry{n: h.n, line: line})
	for h.lines.Len() > histSize {
		h.lines.PopFront()
	}
}

// print lists the lines with their numbers. It rotates the whole queue, so
// the order is unchanged afterward.
func (h *history) print(out io.Writer) {
	for i := h.lines.Len(); i > 0; i-- {
		e := h.lines.Front().(histEntry)
		h.lines.PopFront()
		fmt.Fprintf(out, "%4d  %s\n", e.n, e.line)
		h.lines.PushBack(e)
	}
}
