package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

const Rule = "---------------------"

// Console is the whole external surface of the program: lines out, lines in.
type Console struct {
	out    io.Writer
	in     LineReader
	banner *color.Color
	notice *color.Color
}

func NewConsole(out io.Writer, in LineReader, colored bool) *Console {
	banner := color.New(color.Bold)
	notice := color.New(color.FgYellow)
	if colored {
		banner.EnableColor()
		notice.EnableColor()
	} else {
		banner.DisableColor()
		notice.DisableColor()
	}
	return &Console{
		out:    out,
		in:     in,
		banner: banner,
		notice: notice,
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Banner prints title framed by two rules.
func (c *Console) Banner(title string) {
	c.Rule()
	c.banner.Fprintln(c.out, title)
	c.Rule()
}

func (c *Console) Rule() {
	c.banner.Fprintln(c.out, Rule)
}

func (c *Console) Notice(msg string) {
	c.notice.Fprintln(c.out, msg)
}

func (c *Console) ReadLine(ctx context.Context) (string, error) {
	return c.in.ReadLine(ctx)
}
