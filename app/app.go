package app

import (
	"context"
	"sync"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/charmbracelet/log"
	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/internal"
	"github.com/deevus/erp-tui/nav"
	"github.com/deevus/erp-tui/settings"
	"github.com/deevus/erp-tui/tabs"
	"github.com/deevus/erp-tui/views"
	"github.com/deevus/erp-tui/widgets"
)

// Params holds configuration for creating an App.
type Params struct {
	Services *internal.Services
	Settings *settings.Store
	Logger   *log.Logger
	StaleTTL time.Duration
}

// route binds a path to its page. label is a catalog key.
type route struct {
	path  string
	label string
	page  views.Page
}

// App is the root vxfw widget for erp-tui.
type App struct {
	services *internal.Services
	settings *settings.Store
	logger   *log.Logger

	router   *nav.Router
	tabs     *tabs.Manager
	tabBar   *widgets.TabBar
	routes   []*route
	byPath   map[string]*route
	notFound *views.NotFoundView

	ctx       context.Context
	cancel    context.CancelFunc
	postEvent func(vaxis.Event)
	unsub     []func()

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates the root App widget reading from the given services.
func New(p Params) *App {
	if p.Logger == nil {
		p.Logger = log.Default()
	}
	if p.Settings == nil {
		p.Settings = settings.NewStore(settings.Defaults(), nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	router := nav.NewRouter()
	a := &App{
		services: p.Services,
		settings: p.Settings,
		logger:   p.Logger,
		router:   router,
		tabs:     tabs.NewManager(router),
		tabBar:   widgets.NewTabBar(),
		byPath:   make(map[string]*route),
		ctx:      ctx,
		cancel:   cancel,
		inflight: make(map[string]bool),
	}

	env := views.Env{Settings: p.Settings, Logger: p.Logger, StaleTTL: p.StaleTTL}
	a.notFound = views.NewNotFoundView(env)
	a.register(env)

	a.unsub = append(a.unsub,
		router.Subscribe(a.navigated),
		p.Settings.Subscribe(func(prefs settings.Preferences) {
			a.logger.Debug("preferences changed", "theme", prefs.Theme, "locale", prefs.Locale)
			a.post(views.PreferencesChanged{})
		}),
	)
	return a
}

// menu groups the pages shown as tiles on the main menu.
var menu = []views.MenuSection{
	{Title: "main_operations", Items: []views.MenuItem{
		{Path: "/dashboard", Label: "dashboard"},
		{Path: "/inventory", Label: "inventory"},
		{Path: "/sales", Label: "sales"},
		{Path: "/purchasing", Label: "purchasing"},
	}},
	{Title: "manufacturing_logistics", Items: []views.MenuItem{
		{Path: "/manufacturing/production", Label: "production_orders"},
		{Path: "/manufacturing/bom", Label: "bill_of_materials"},
		{Path: "/warehouses", Label: "branches_warehouses"},
		{Path: "/inventory/transfers", Label: "inventory_transfers"},
		{Path: "/inventory/goods-receipt", Label: "goods_receipt"},
	}},
	{Title: "system", Items: []views.MenuItem{
		{Path: "/reports", Label: "reports"},
		{Path: "/settings", Label: "settings"},
	}},
}

func (a *App) register(env views.Env) {
	add := func(path, label string, page views.Page) {
		r := &route{path: path, label: label, page: page}
		a.routes = append(a.routes, r)
		a.byPath[path] = r
	}

	add(nav.Home, "main_menu", views.NewMainMenuView(views.MainMenuViewParams{
		Sections: menu,
		Open:     func(item views.MenuItem) { a.OpenPage(item.Path) },
		Env:      env,
	}))

	svc := a.services
	if svc == nil {
		// Without data sources only the static pages are routable.
		add("/settings", "settings", views.NewSettingsView(views.SettingsViewParams{Env: env}))
		return
	}
	add("/dashboard", "dashboard", views.NewDashboardView(views.DashboardViewParams{Reporting: svc.Reporting, Env: env}))
	add("/inventory", "inventory", views.NewInventoryView(views.InventoryViewParams{Service: svc.Inventory, Env: env}))
	add("/inventory/goods-receipt", "goods_receipt", views.NewGoodsReceiptView(views.GoodsReceiptViewParams{Service: svc.Inventory, Env: env}))
	add("/inventory/transfers", "inventory_transfers", views.NewTransfersView(views.WarehousesViewParams{Service: svc.Inventory, Env: env}))
	add("/sales", "sales", views.NewSalesView(views.SalesViewParams{Service: svc.Sales, Env: env}))
	add("/purchasing", "purchasing", views.NewPurchasingView(views.PurchasingViewParams{Service: svc.Purchasing, Env: env}))

	mfg := views.ManufacturingViewParams{Service: svc.Manufacturing, Inventory: svc.Inventory, Env: env}
	add("/manufacturing/production", "production_orders", views.NewProductionView(mfg))
	add("/manufacturing/bom", "bill_of_materials", views.NewBOMView(mfg))
	add("/warehouses", "branches_warehouses", views.NewWarehousesView(views.WarehousesViewParams{Service: svc.Inventory, Env: env}))
	add("/reports", "reports", views.NewReportsView(views.ReportsViewParams{
		Inventory:  svc.Inventory,
		Sales:      svc.Sales,
		Purchasing: svc.Purchasing,
		Env:        env,
	}))
	add("/settings", "settings", views.NewSettingsView(views.SettingsViewParams{Env: env}))
}

// SetPostEvent sets the function used to post events to the vaxis event loop.
// Must be called before LoadAll.
func (a *App) SetPostEvent(fn func(vaxis.Event)) {
	a.postEvent = fn
}

func (a *App) post(ev vaxis.Event) {
	if a.postEvent != nil {
		a.postEvent(ev)
	}
}

// Close cancels in-flight loads and drops subscriptions.
func (a *App) Close() {
	a.cancel()
	for _, fn := range a.unsub {
		fn()
	}
	a.unsub = nil
}

// Router returns the navigator driving the app.
func (a *App) Router() *nav.Router {
	return a.router
}

// Tabs returns the tab manager.
func (a *App) Tabs() *tabs.Manager {
	return a.tabs
}

// CurrentPath returns the path of the page on screen.
func (a *App) CurrentPath() string {
	return a.router.CurrentPath()
}

// Page returns the page registered at path.
func (a *App) Page(path string) (views.Page, bool) {
	r, ok := a.byPath[nav.Clean(path)]
	if !ok {
		return nil, false
	}
	return r.page, true
}

func (a *App) locale() i18n.Locale {
	return a.settings.Get().Locale
}

// OpenPage opens path in a tab, labelled in the current locale, and navigates
// to it.
func (a *App) OpenPage(path string) {
	path = nav.Clean(path)
	label := path
	if r, ok := a.byPath[path]; ok {
		label = a.locale().T(r.label)
	}
	a.tabs.OpenTab(tabs.Tab{Path: path, Label: label})
}

// LoadAll loads data for every page in parallel using goroutines.
// Each page posts a ViewLoaded event when done.
func (a *App) LoadAll() {
	for _, r := range a.routes {
		a.load(r)
	}
}

// Reload refetches the current page regardless of staleness.
func (a *App) Reload() {
	if r, ok := a.byPath[a.router.CurrentPath()]; ok {
		a.load(r)
	}
}

// load fetches r's page on a goroutine unless a fetch is already running.
func (a *App) load(r *route) {
	a.mu.Lock()
	if a.inflight[r.path] {
		a.mu.Unlock()
		return
	}
	a.inflight[r.path] = true
	a.mu.Unlock()

	go func() {
		err := r.page.Load(a.ctx)

		a.mu.Lock()
		delete(a.inflight, r.path)
		a.mu.Unlock()

		a.post(views.ViewLoaded{Path: r.path, Err: err})
	}()
}

// Loading reports whether a fetch for path is in flight.
func (a *App) Loading(path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inflight[path]
}

// navigated refetches the new page if its data has become stale.
func (a *App) navigated(path string) {
	r, ok := a.byPath[path]
	if !ok {
		a.logger.Debug("no page for path", "path", path)
		return
	}
	if r.page.Stale() {
		a.load(r)
	}
}

func (a *App) currentPage() (vxfw.Widget, string) {
	path := a.router.CurrentPath()
	if r, ok := a.byPath[path]; ok {
		return r.page, r.label
	}
	a.notFound.SetPath(path)
	return a.notFound, "page_not_found"
}

func (a *App) editing() bool {
	page, _ := a.currentPage()
	e, ok := page.(views.Editor)
	return ok && e.Editing()
}

// Draw renders the title bar, tab bar, current page and help line.
func (a *App) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	prefs := a.settings.Get()
	palette := widgets.PaletteFor(prefs.Theme)
	page, label := a.currentPage()

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)
	if ctx.Max.Height < 4 {
		return s, nil
	}
	line := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	// Title bar (1 row)
	widgets.WriteText(&s, 0, 0, int(ctx.Max.Width),
		prefs.Locale.T("app_title")+"  ·  "+prefs.Locale.T(label), palette.Title(), false)

	// Tab bar (1 row)
	a.tabBar.SetTabs(a.tabs.OpenTabs(), a.tabs.ActiveTab())
	a.tabBar.Accent = palette.Accent
	a.tabBar.RTL = prefs.Locale.Direction() == i18n.RTL
	tabSurf, err := a.tabBar.Draw(line)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 1, tabSurf)

	// Current page (remaining space less the help line)
	viewCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: ctx.Max.Height - 3})
	viewSurf, err := page.Draw(viewCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 2, viewSurf)

	help := prefs.Locale.T("help_global")
	switch a.router.CurrentPath() {
	case nav.Home:
		help = prefs.Locale.T("help_menu") + "  " + help
	case "/settings":
		help = prefs.Locale.T("help_settings") + "  " + help
	}
	widgets.WriteText(&s, 0, ctx.Max.Height-1, int(ctx.Max.Width), help, palette.Dim(), false)

	return s, nil
}

// CaptureEvent handles global keybindings before views process them. While
// a page is capturing text only Ctrl-C is intercepted.
func (a *App) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return nil, nil
	}
	if key.Matches('c', vaxis.ModCtrl) {
		return vxfw.QuitCmd{}, nil
	}
	if a.editing() {
		return nil, nil
	}

	switch {
	case key.Matches('q'):
		return vxfw.QuitCmd{}, nil
	case key.Matches('h'):
		a.router.Navigate(nav.Home)
	case key.Matches('r'):
		a.Reload()
	case key.Matches('x'):
		a.tabs.CloseTab(a.router.CurrentPath())
	case key.Matches(vaxis.KeyTab, vaxis.ModShift):
		a.syncTabBar()
		if path, ok := a.tabBar.Prev(); ok {
			a.router.Navigate(path)
		}
	case key.Matches(vaxis.KeyTab):
		a.syncTabBar()
		if path, ok := a.tabBar.Next(); ok {
			a.router.Navigate(path)
		}
	case key.Keycode >= '1' && key.Keycode <= '9' && key.Matches(key.Keycode):
		a.syncTabBar()
		path, ok := a.tabBar.At(int(key.Keycode - '1'))
		if !ok {
			return nil, nil
		}
		a.router.Navigate(path)
	default:
		return nil, nil
	}
	return vxfw.ConsumeAndRedraw(), nil
}

func (a *App) syncTabBar() {
	a.tabBar.SetTabs(a.tabs.OpenTabs(), a.tabs.ActiveTab())
}

// HandleEvent delegates to the current page, and handles custom events.
func (a *App) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case views.ViewLoaded:
		if ev.Err != nil {
			a.logger.Error("load failed", "path", ev.Path, "err", ev.Err)
		} else {
			a.logger.Debug("loaded", "path", ev.Path)
		}
		return vxfw.RedrawCmd{}, nil
	case views.PreferencesChanged:
		return vxfw.RedrawCmd{}, nil
	default:
		page, _ := a.currentPage()
		if h, ok := page.(vxfw.EventHandler); ok {
			return h.HandleEvent(ev, phase)
		}
		return nil, nil
	}
}
