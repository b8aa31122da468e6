package accounts

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cratchit-dev/cratchit/internal/model"
)

// RenderOptions controls tree rendering.
type RenderOptions struct {
	Color bool
}

// RenderTree writes one line per account, indented by depth:
//
//	01  Assets [asset, USD] (placeholder)
//	  01-01  Business Checking [asset, USD]
func RenderTree(w io.Writer, chart *Chart, opts RenderOptions) error {
	placeholder := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		placeholder.EnableColor()
	} else {
		placeholder.DisableColor()
	}

	return chart.Walk(func(acct model.Account, depth int) error {
		line := fmt.Sprintf("%s%s  %s [%s, %s]", strings.Repeat("  ", depth), acct.ID(), acct.Name(), acct.Type(), acct.Currency())
		var err error
		if acct.Placeholder() {
			_, err = placeholder.Fprintln(w, line+" (placeholder)")
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		return err
	})
}
