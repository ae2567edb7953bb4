package views

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// NotFoundView is shown for any path without a page.
type NotFoundView struct {
	staticPage
	env  Env
	path string
}

// NewNotFoundView creates a NotFoundView.
func NewNotFoundView(env Env) *NotFoundView {
	return &NotFoundView{env: env}
}

// SetPath records the path that failed to match.
func (nv *NotFoundView) SetPath(path string) {
	nv.path = path
}

func (nv *NotFoundView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := nv.env.format()
	return drawMessage(ctx, nv,
		[]vaxis.Segment{{Text: "404 " + f.t("page_not_found"), Style: vaxis.Style{Foreground: f.palette.Bad, Attribute: vaxis.AttrBold}}},
		[]vaxis.Segment{{Text: nv.path, Style: f.palette.Dim()}},
		[]vaxis.Segment{{Text: f.t("go_home"), Style: f.palette.Dim()}},
	)
}

func (nv *NotFoundView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}
