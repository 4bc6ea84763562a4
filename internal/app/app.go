// Package app contains the root bubbletea model for the two synchronized
// lists.
package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/twinscroll/internal/config"
	"github.com/llehouerou/twinscroll/internal/frame"
	"github.com/llehouerou/twinscroll/internal/gesture"
	"github.com/llehouerou/twinscroll/internal/keymap"
	"github.com/llehouerou/twinscroll/internal/syncscroll"
	"github.com/llehouerou/twinscroll/internal/ui/scrolllist"
	"github.com/llehouerou/twinscroll/internal/ui/styles"
)

// Model is the root application model containing all state.
type Model struct {
	Left  *scrolllist.Model
	Right *scrolllist.Model

	Controller *syncscroll.Controller
	Router     *syncscroll.Router
	Recognizer *gesture.Recognizer
	Scheduler  *frame.Tea

	keys      *keymap.Resolver
	help      help.Model
	log       *slog.Logger
	now       func() time.Time
	rowHeight int

	autostart     bool
	startDelay    time.Duration
	leftPercent   int
	easeInOut     bool
	ShowHelp      bool
	LastClick     string
	ErrorMsg      string
	Width, Height int
}

// New creates the application model from configuration.
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts, err := cfg.ScrollOptions()
	if err != nil {
		return Model{}, err
	}
	opts.Logger = logger

	lists, err := cfg.GetListsConfig()
	if err != nil {
		return Model{}, err
	}

	sched := frame.NewTea(lists.FrameInterval())
	ctrl, err := syncscroll.New(sched, opts)
	if err != nil {
		return Model{}, err
	}

	t := styles.T()
	left := scrolllist.New(scrolllist.Options{
		Items:      lists.LeftItems,
		ItemHeight: lists.LeftItemHeight,
		RowHeight:  lists.RowHeight,
		TileFrom:   t.LeftTileFrom,
		TileTo:     t.LeftTileTo,
	})
	right := scrolllist.New(scrolllist.Options{
		Items:      lists.RightItems,
		ItemHeight: lists.RightItemHeight,
		RowHeight:  lists.RowHeight,
		TileFrom:   t.RightTileFrom,
		TileTo:     t.RightTileTo,
	})
	left.SetSelection(lists.LeftStart)
	right.SetSelection(lists.RightStart)
	if err := ctrl.Bind(left, right); err != nil {
		return Model{}, err
	}

	router := syncscroll.NewRouter(ctrl, nil)

	return Model{
		Left:        left,
		Right:       right,
		Controller:  ctrl,
		Router:      router,
		Recognizer:  gesture.New(router, cfg.GestureOptions()),
		Scheduler:   sched,
		keys:        keymap.NewResolver(keymap.Bindings),
		help:        help.New(),
		log:         logger,
		now:         sched.Now,
		rowHeight:   lists.RowHeight,
		autostart:   cfg.AutostartAnimation(),
		startDelay:  opts.StartAnimationDelay,
		leftPercent: lists.LeftWidthPercent,
		easeInOut:   strings.EqualFold(cfg.Animation.Easing, "ease-in-out"),
	}, nil
}

// Init implements tea.Model. The idle drift is armed here so it starts
// once the event loop runs.
func (m Model) Init() tea.Cmd {
	if m.autostart {
		if err := m.Controller.StartAnimation(m.startDelay); err != nil {
			m.log.Error("start animation", "error", err)
		}
	}
	return m.Scheduler.Flush()
}

// Close stops every driver and releases the pending touch event.
func (m Model) Close() {
	m.Router.Close()
	m.Controller.Detach()
}
