package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderers holds one *sync.Pool of glamour renderers per Options value.
// A TermRenderer must not run concurrent Render calls, so each caller
// borrows its own and hands it back.
var renderers sync.Map

func poolFor(opts Options) *sync.Pool {
	if p, ok := renderers.Load(opts); ok {
		return p.(*sync.Pool)
	}
	p, _ := renderers.LoadOrStore(opts, &sync.Pool{
		New: func() any {
			r, err := createRenderer(opts)
			if err != nil {
				return nil
			}
			return r
		},
	})
	return p.(*sync.Pool)
}

// borrow takes a renderer for opts, building one when the pool is empty
func borrow(opts Options) (*glamour.TermRenderer, error) {
	if r, ok := poolFor(opts).Get().(*glamour.TermRenderer); ok && r != nil {
		return r, nil
	}
	// the pool swallows construction errors; rebuild to report one
	return createRenderer(opts)
}

func release(opts Options, r *glamour.TermRenderer) {
	if r != nil {
		poolFor(opts).Put(r)
	}
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{glamour.WithWordWrap(opts.Width)}

	if IsStandardStyle(opts.Style) {
		ropts = append(ropts, glamour.WithStandardStyle(opts.Style))
	} else {
		ropts = append(ropts, glamour.WithStylePath(opts.Style))
	}
	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		ropts = append(ropts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(ropts...)
}
