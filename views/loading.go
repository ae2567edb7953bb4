package views

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
)

// drawLoadingState renders a "Loading..." message in the view.
func drawLoadingState(ctx vxfw.DrawContext, owner vxfw.Widget, f format) (vxfw.Surface, error) {
	return drawMessage(ctx, owner, []vaxis.Segment{
		{Text: f.t("loading"), Style: vaxis.Style{Attribute: vaxis.AttrDim}},
	})
}

// drawErrorState renders a failed fetch with a retry hint.
func drawErrorState(ctx vxfw.DrawContext, owner vxfw.Widget, f format, err error) (vxfw.Surface, error) {
	return drawMessage(ctx, owner,
		[]vaxis.Segment{{Text: f.locale.Tf("load_failed", err), Style: vaxis.Style{Foreground: f.palette.Bad}}},
		[]vaxis.Segment{{Text: f.t("retry_hint"), Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	)
}

// drawMessage stacks one line per segment group at the top of the view.
func drawMessage(ctx vxfw.DrawContext, owner vxfw.Widget, lines ...[]vaxis.Segment) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, owner)
	for i, segs := range lines {
		if i >= int(ctx.Max.Height) {
			break
		}
		surf, err := richtext.New(segs).Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, i, surf)
	}
	return s, nil
}

// drawLine renders segments as a single row.
func drawLine(ctx vxfw.DrawContext, segs ...vaxis.Segment) (vxfw.Surface, error) {
	return richtext.New(segs).Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1}))
}
