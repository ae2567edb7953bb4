package views

import (
	"context"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/widgets"
	"golang.org/x/sync/errgroup"
)

// DashboardViewParams holds configuration for creating a DashboardView.
type DashboardViewParams struct {
	Reporting erp.ReportingServiceAPI
	Env       Env
}

// DashboardView shows the headline figures, the monthly sales trend and the
// best selling products.
type DashboardView struct {
	loadState
	env       Env
	reportSvc erp.ReportingServiceAPI

	// Protected by mu.
	stats   erp.DashboardStats
	monthly []erp.MonthlySales
	top     []erp.TopProduct
	trend   *widgets.Sparkline
}

// NewDashboardView creates a DashboardView backed by the given params.
func NewDashboardView(p DashboardViewParams) *DashboardView {
	dv := &DashboardView{
		env:       p.Env,
		reportSvc: p.Reporting,
		trend:     widgets.NewSparkline(24),
	}
	dv.staleTTL = p.Env.StaleTTL
	return dv
}

// Load fetches the stats, the monthly trend and the top products concurrently.
func (dv *DashboardView) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var stats *erp.DashboardStats
	var monthly []erp.MonthlySales
	var top []erp.TopProduct

	g.Go(func() error {
		s, err := dv.reportSvc.GetDashboardStats(gctx)
		if err != nil {
			return fmt.Errorf("reporting.stats: %w", err)
		}
		stats = s
		return nil
	})

	g.Go(func() error {
		list, err := dv.reportSvc.ListMonthlySales(gctx)
		if err != nil {
			return fmt.Errorf("reporting.monthly: %w", err)
		}
		monthly = list
		return nil
	})

	g.Go(func() error {
		list, err := dv.reportSvc.ListTopProducts(gctx)
		if err != nil {
			return fmt.Errorf("reporting.top: %w", err)
		}
		top = list
		return nil
	})

	err := g.Wait()

	dv.mu.Lock()
	defer dv.mu.Unlock()
	if err == nil {
		if stats != nil {
			dv.stats = *stats
		}
		dv.monthly = monthly
		dv.top = top
		vals := make([]float64, len(monthly))
		for i, m := range monthly {
			vals[i] = m.Sales
		}
		dv.trend.SetValues(vals)
	}
	dv.finish(err)
	return err
}

// Stats returns the last fetched headline figures.
func (dv *DashboardView) Stats() erp.DashboardStats {
	dv.mu.Lock()
	defer dv.mu.Unlock()
	return dv.stats
}

type kpi struct {
	label string
	value string
}

const kpiGap = 2

// drawCards renders the headline figures side by side as label over value.
func drawCards(ctx vxfw.DrawContext, owner vxfw.Widget, cards []kpi, f format) vxfw.Surface {
	s := vxfw.NewSurface(ctx.Max.Width, 2, owner)
	cardWidth := (int(ctx.Max.Width) - kpiGap*(len(cards)-1)) / len(cards)
	if cardWidth < 1 {
		return s
	}
	valueStyle := vaxis.Style{Foreground: f.palette.Accent, Attribute: vaxis.AttrBold}
	for i, c := range cards {
		col := uint16(i * (cardWidth + kpiGap))
		widgets.WriteText(&s, col, 0, cardWidth, c.label, f.palette.Dim(), false)
		widgets.WriteText(&s, col, 1, cardWidth, c.value, valueStyle, false)
	}
	return s
}

// Draw renders the dashboard.
func (dv *DashboardView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	f := dv.env.format()

	dv.mu.Lock()
	defer dv.mu.Unlock()

	if dv.err != nil {
		return drawErrorState(ctx, dv, f, dv.err)
	}
	if !dv.loaded {
		return drawLoadingState(ctx, dv, f)
	}

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, dv)
	line := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})
	row := 0

	title, err := drawLine(line, vaxis.Segment{Text: f.t("dashboard"), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, title)
	row += 2

	cards := drawCards(ctx, dv, []kpi{
		{f.t("total_sales"), f.money(dv.stats.TotalSales)},
		{f.t("total_purchases"), f.money(dv.stats.TotalPurchases)},
		{f.t("inventory_value"), f.money(dv.stats.InventoryValue)},
		{f.t("quick_ratio"), f.locale.FormatDecimal(dv.stats.QuickRatio)},
	}, f)
	s.AddChild(0, row, cards)
	row += 3

	// === Monthly trend ===
	trendTitle, err := drawLine(line, vaxis.Segment{Text: f.t("monthly_sales_trend"), Style: f.palette.Title()})
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, trendTitle)
	row++

	if n := len(dv.monthly); n > 0 {
		dv.trend.Color = f.palette.Chart
		dv.trend.Stretch = true
		sparkSurf, err := dv.trend.Draw(line)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, sparkSurf)
		row++

		span := max(1, int(ctx.Max.Width)/n)
		labels := vxfw.NewSurface(ctx.Max.Width, 1, dv)
		for i, m := range dv.monthly {
			col := i * span
			if col >= int(ctx.Max.Width) {
				break
			}
			w := min(span-1, int(ctx.Max.Width)-col)
			if w < 1 {
				w = 1
			}
			widgets.WriteText(&labels, uint16(col), 0, w, m.Month, f.palette.Dim(), false)
		}
		s.AddChild(0, row, labels)
		row++
	}
	row++

	// === Top products ===
	if row < int(ctx.Max.Height) {
		topTitle, err := drawLine(line, vaxis.Segment{Text: f.t("top_selling_products"), Style: f.palette.Title()})
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, topTitle)
		row++
	}

	best := 0
	for _, p := range dv.top {
		best = max(best, p.Sales)
	}
	for _, p := range dv.top {
		if row >= int(ctx.Max.Height) {
			break
		}
		pct := 0.0
		if best > 0 {
			pct = float64(p.Sales) / float64(best) * 100
		}
		gauge := &widgets.BarGauge{
			Label:       p.Name,
			LabelWidth:  20,
			Value:       pct,
			Suffix:      f.number(p.Sales),
			BarWidth:    24,
			Color:       f.palette.Chart,
			HidePercent: true,
		}
		gaugeSurf, err := gauge.Draw(line)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, gaugeSurf)
		row++
	}

	return s, nil
}

// HandleEvent is a no-op; the dashboard has nothing to select.
func (dv *DashboardView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return nil, nil
}
