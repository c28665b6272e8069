package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"ringmap/internal/flat"
	"ringmap/internal/geom"
)

// Options configures the viewer at launch.
type Options struct {
	// Path is an optional file to preload.
	Path string
	// Tolerance is the screen-space simplification tolerance in braille
	// micro-pixels; 0 picks a default of one micro-pixel.
	Tolerance float64
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	points   [][2]float64
	lines    [][][2]float64
	polygons []geom.Polygon
	extent   flat.Extent

	// screen-space simplify tolerance in micro-pixels
	tolerance float64

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
	// nearest boundary point to the hovered position, if any
	hoverHitOK bool
	hoverHit   boundaryHit

	// attributes table
	showAttrs bool
	tbl       table.Model
	attrCols  []string
	attrRows  []table.Row
}

func New(opts Options) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "ringmap ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		tolerance:   opts.Tolerance,
		extent:      flat.EmptyExtent(),
	}
	if m.tolerance <= 0 {
		m.tolerance = 1
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON, optionally Z/M/ZM). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
