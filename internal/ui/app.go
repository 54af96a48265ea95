package ui

import (
	"fmt"
	"time"

	"windarrows/internal/arrow"
	"windarrows/internal/debug"
	"windarrows/internal/geo"
	"windarrows/internal/scale"

	"github.com/gdamore/tcell/v2"
)

// ViewMode represents the current view mode
type ViewMode int

const (
	ViewModeMap ViewMode = iota
	ViewModeDetail
)

const (
	listWidth    = 30
	listHeight   = 12
	detailWidth  = 60
	detailHeight = 15
	panStep      = 8 // cells
)

// App is the main application controller
type App struct {
	screen      tcell.Screen
	layer       *arrow.Layer
	mapView     *MapView
	listView    *ListView
	detailView  *DetailView
	currentView ViewMode
	quit        chan struct{}
}

// NewApp creates a new application on the terminal
func NewApp(layer *arrow.Layer, features map[geo.FeatureType][]*geo.Feature, scaleOpts scale.Options, radiusMiles float64, aspectRatio float64) (*App, error) {
	// Initialize tcell screen
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	return newApp(screen, layer, features, scaleOpts, radiusMiles, aspectRatio), nil
}

// newApp builds the views on an initialized screen
func newApp(screen tcell.Screen, layer *arrow.Layer, features map[geo.FeatureType][]*geo.Feature, scaleOpts scale.Options, radiusMiles float64, aspectRatio float64) *App {
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()
	screen.Clear()

	width, height := screen.Size()

	mapView := NewMapView(width, height, features, layer, scaleOpts, radiusMiles, aspectRatio)

	// List and detail views share the lower-left corner
	listView := NewListView(0, height-listHeight, listWidth, listHeight)
	detailView := NewDetailView(0, height-detailHeight, detailWidth, detailHeight)

	app := &App{
		screen:      screen,
		layer:       layer,
		mapView:     mapView,
		listView:    listView,
		detailView:  detailView,
		currentView: ViewModeMap,
		quit:        make(chan struct{}),
	}
	app.update()

	return app
}

// Run starts the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	events := make(chan tcell.Event)
	go a.screen.ChannelEvents(events, a.quit)

	ticker := time.NewTicker(100 * time.Millisecond) // 10 FPS
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case <-ticker.C:
			a.update()
			a.render()

		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil // Quit requested
			}
		}
	}
}

// update syncs the list and detail views with the layer
func (a *App) update() {
	a.listView.Update(a.layer.All())

	if a.currentView == ViewModeDetail {
		a.detailView.SetEntity(a.listView.GetSelected())
	}
}

// render renders the current view to the screen
func (a *App) render() {
	a.screen.Clear()

	// Always draw map
	a.mapView.Draw(a.screen, a.listView.GetSelected())

	// Draw list or detail view depending on mode
	switch a.currentView {
	case ViewModeMap:
		a.listView.Draw(a.screen)
	case ViewModeDetail:
		a.detailView.Draw(a.screen)
	}

	a.screen.Show()
}

// showDetail switches to the detail view of the selected arrow
func (a *App) showDetail() {
	a.currentView = ViewModeDetail
	a.detailView.SetEntity(a.listView.GetSelected())
}

// handleEvent processes keyboard and mouse events. Returns false on quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if e, ok := a.mapView.EntityAt(x, y); ok {
				a.listView.Select(e)
				a.showDetail()
				debug.Log("Clicked arrow %s", e.Data().ID)
			}
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.currentView == ViewModeDetail {
			a.currentView = ViewModeMap
		} else {
			close(a.quit)
			return false
		}

	case tcell.KeyEnter:
		if a.currentView == ViewModeMap {
			a.showDetail()
		}

	case tcell.KeyTab:
		a.listView.SelectNextWrap()
		a.mapView.CenterOn(a.listView.GetSelected())

	case tcell.KeyUp:
		if a.currentView == ViewModeMap {
			a.listView.SelectPrev()
			a.mapView.CenterOn(a.listView.GetSelected())
		}

	case tcell.KeyDown:
		if a.currentView == ViewModeMap {
			a.listView.SelectNext()
			a.mapView.CenterOn(a.listView.GetSelected())
		}

	case tcell.KeyLeft:
		a.mapView.Pan(-panStep, 0)

	case tcell.KeyRight:
		a.mapView.Pan(panStep, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			close(a.quit)
			return false

		case 'r', 'R':
			a.render()

		case 'c', 'C':
			a.mapView.CenterOn(a.listView.GetSelected())

		case '+', '=':
			a.mapView.ZoomIn()

		case '-', '_':
			a.mapView.ZoomOut()

		case 'h':
			a.mapView.Pan(-panStep, 0)
		case 'l':
			a.mapView.Pan(panStep, 0)
		case 'k':
			a.mapView.Pan(0, -panStep/2)
		case 'j':
			a.mapView.Pan(0, panStep/2)
		}
	}

	return true
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()

	a.mapView.UpdateDimensions(width, height)
	a.listView.UpdateDimensions(0, height-listHeight, listWidth, listHeight)
	a.detailView.UpdateDimensions(0, height-detailHeight, detailWidth, detailHeight)
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	a.mapView.Scale().Detach()
	a.layer.Detach()

	if a.screen != nil {
		a.screen.Fini()
	}
}
