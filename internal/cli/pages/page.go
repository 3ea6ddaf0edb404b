package pages

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/julianstephens/ezauto/internal/cli"
	"github.com/julianstephens/ezauto/internal/tui"
)

const fallbackWidth = 100

// PageCmd prints the page without starting the interactive program
type PageCmd struct {
	Section string `help:"Section to print." enum:"all,home,courses,enroll,location,faq,contact" default:"all"`
	Width   int    `help:"Render width in columns. 0 uses the terminal width."`
}

func (c *PageCmd) Run(ctx *cli.Context) error {
	out, err := tui.RenderStatic(ctx.Page, c.width(), c.Section)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func (c *PageCmd) width() int {
	if c.Width > 0 {
		return c.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
