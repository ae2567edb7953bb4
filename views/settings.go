package views

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/settings"
	"github.com/deevus/erp-tui/widgets"
)

// SettingsViewParams holds configuration for creating a SettingsView.
type SettingsViewParams struct {
	Env Env
}

type settingRow int

const (
	rowTheme settingRow = iota
	rowLanguage
	rowCurrency
	settingRows
)

// SettingsView edits the display preferences. Enter cycles the value under
// the cursor; the currency is read-only.
type SettingsView struct {
	staticPage
	env    Env
	cursor settingRow
}

// NewSettingsView creates a SettingsView backed by the given params.
func NewSettingsView(p SettingsViewParams) *SettingsView {
	return &SettingsView{env: p.Env}
}

func (sv *SettingsView) cycle() {
	store := sv.env.Settings
	if store == nil {
		return
	}
	var err error
	switch sv.cursor {
	case rowTheme:
		err = store.Update(func(p settings.Preferences) settings.Preferences {
			return p.WithTheme(settings.Next(settings.Themes, p.Theme))
		})
	case rowLanguage:
		err = store.Update(func(p settings.Preferences) settings.Preferences {
			return p.WithLocale(settings.Next(i18n.Locales, p.Locale))
		})
	default:
		return
	}
	if err != nil {
		sv.env.logger().Error("preferences not saved", "err", err)
	}
}

// Draw renders one row per preference.
func (sv *SettingsView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := sv.env.format()
	p := sv.env.prefs()
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, sv)

	title, err := drawLine(ctx, vaxis.Segment{Text: f.t("settings"), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, title)

	widgets.WriteText(&s, 0, 2, int(ctx.Max.Width), f.t("appearance"), vaxis.Style{Attribute: vaxis.AttrBold}, false)

	values := [settingRows][2]string{
		rowTheme:    {f.t("theme"), string(p.Theme)},
		rowLanguage: {f.t("language"), p.Locale.Name()},
		rowCurrency: {f.t("currency"), p.Currency},
	}
	for i, v := range values {
		row := uint16(3 + i)
		if row >= ctx.Max.Height {
			break
		}
		labelStyle := vaxis.Style{}
		valueStyle := vaxis.Style{Foreground: f.palette.Accent}
		marker := "  "
		if settingRow(i) == sv.cursor {
			marker = "▸ "
			labelStyle.Attribute = vaxis.AttrBold
			valueStyle.Attribute = vaxis.AttrReverse
		}
		if settingRow(i) == rowCurrency {
			valueStyle = f.palette.Dim()
		}
		widgets.WriteText(&s, 0, row, 2, marker, labelStyle, false)
		widgets.WriteText(&s, 2, row, 18, v[0], labelStyle, false)
		widgets.WriteText(&s, 22, row, max(0, int(ctx.Max.Width)-22), " "+v[1]+" ", valueStyle, false)
	}
	return s, nil
}

// HandleEvent moves the cursor and cycles the selected preference.
func (sv *SettingsView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return nil, nil
	}
	switch {
	case key.Matches('j'), key.Matches(vaxis.KeyDown):
		sv.cursor = (sv.cursor + 1) % settingRows
	case key.Matches('k'), key.Matches(vaxis.KeyUp):
		sv.cursor = (sv.cursor - 1 + settingRows) % settingRows
	case key.Matches(vaxis.KeyEnter), key.Matches(' '):
		sv.cycle()
	default:
		return nil, nil
	}
	return vxfw.ConsumeAndRedraw(), nil
}
