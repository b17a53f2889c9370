package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sky-fighter/constants"
	"github.com/lixenwraith/sky-fighter/engine"
	"github.com/lixenwraith/sky-fighter/status"
)

// TerminalRenderer draws Frames onto a tcell screen
// Row layout: HUD, playfield, status bar
type TerminalRenderer struct {
	screen tcell.Screen
	status *status.Registry

	// World extent is replaced by the level controller goroutine
	mu     sync.Mutex
	worldW float64
	worldH float64
}

// NewTerminalRenderer creates a renderer for the default world size, statusReg may be nil
func NewTerminalRenderer(screen tcell.Screen, statusReg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		status: statusReg,
		worldW: constants.ScreenWidth,
		worldH: constants.ScreenHeight,
	}
}

// SetWorldSize changes the world extent mapped onto the playfield
func (r *TerminalRenderer) SetWorldSize(w, h float64) {
	if w > 0 && h > 0 {
		r.mu.Lock()
		r.worldW, r.worldH = w, h
		r.mu.Unlock()
	}
}

// Viewport returns the playfield rectangle for the current screen size
func (r *TerminalRenderer) Viewport() Viewport {
	w, h := r.screen.Size()
	r.mu.Lock()
	defer r.mu.Unlock()
	return Viewport{
		X:      0,
		Y:      constants.HUDRows,
		Width:  w,
		Height: h - constants.HUDRows - constants.StatusRows,
		WorldW: r.worldW,
		WorldH: r.worldH,
	}
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	vp := r.Viewport()

	bgStyle := tcell.StyleDefault.Background(BackgroundColor(f.Background))
	hudStyle := tcell.StyleDefault.Background(RgbHUDBackground).Foreground(RgbHUDText)

	if vp.Height > 0 {
		r.drawBackground(vp, f.Background, bgStyle)
		r.drawEntities(vp, f, bgStyle)
		r.drawBanners(vp, f)
	}

	r.drawHUD(w, f, hudStyle)
	if h > constants.HUDRows {
		r.drawStatusBar(w, h-1, f, hudStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBackground(vp Viewport, bg Background, style tcell.Style) {
	starStyle := style.Foreground(RgbStar)
	for y := vp.Y; y < vp.Y+vp.Height; y++ {
		for x := vp.X; x < vp.X+vp.Width; x++ {
			if bg.StarEvery > 0 && (x*7+y*13)%bg.StarEvery == 0 {
				r.screen.SetContent(x, y, bg.Star, nil, starStyle)
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawEntities(vp Viewport, f Frame, bgStyle tcell.Style) {
	for _, e := range f.Entities {
		x0, y0, x1, y1, ok := vp.CellRect(e.Bounds)
		if !ok {
			continue
		}

		style := bgStyle.Foreground(KindColor(e.Kind))
		if e.Dim {
			style = style.Dim(true)
		}
		glyph := KindGlyph(e.Kind)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y, glyph, nil, style)
			}
		}

		if e.Shield {
			r.drawShield(vp, x0-1, y0-1, x1+1, y1+1, bgStyle.Foreground(RgbShield))
		}
	}
}

// drawShield outlines the boss one cell outside its body
func (r *TerminalRenderer) drawShield(vp Viewport, x0, y0, x1, y1 int, style tcell.Style) {
	set := func(x, y int) {
		if vp.Contains(x, y) {
			r.screen.SetContent(x, y, '░', nil, style)
		}
	}
	for x := x0; x <= x1; x++ {
		set(x, y0)
		set(x, y1)
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y)
		set(x1, y)
	}
}

func (r *TerminalRenderer) drawBanners(vp Viewport, f Frame) {
	style := tcell.StyleDefault.Background(RgbBannerBg).Foreground(RgbBannerText).Bold(true)
	row := vp.Y + vp.Height/2
	for b := engine.Banner(0); b < engine.BannerCount; b++ {
		if !f.Banners[b] {
			continue
		}
		text := BannerText(b)
		x := vp.X + (vp.Width-len([]rune(text)))/2
		r.drawText(max(x, 0), row, vp.Width, text, style)
		row++
	}
}

// drawHUD draws hearts on the left and the kill counter on the right of row 0
func (r *TerminalRenderer) drawHUD(w int, f Frame, style tcell.Style) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	heartStyle := style.Foreground(RgbHeart)
	for i := 0; i < f.Hearts && i*2 < w; i++ {
		r.screen.SetContent(i*2, 0, constants.HeartGlyph, nil, heartStyle)
	}

	text := KillsText(f.Kills, f.Target)
	x := w - len(text) - 1
	if x < f.Hearts*2 {
		x = f.Hearts * 2
	}
	r.drawText(x, 0, w, text, style)
}

// drawStatusBar shows the active alert, otherwise the metric line
func (r *TerminalRenderer) drawStatusBar(w, y int, f Frame, style tcell.Style) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	if f.Alert != "" {
		r.drawText(0, y, w, " "+f.Alert+" ", style.Background(RgbAlertBg).Foreground(RgbHUDText))
		return
	}
	if r.status != nil {
		r.drawText(0, y, w, strings.Join(r.status.Lines(), "  "), style.Foreground(RgbStatusText))
	}
}

// drawText writes s from x, clipped to limit columns
func (r *TerminalRenderer) drawText(x, y, limit int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= limit {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// BannerText returns the overlay caption of a banner
func BannerText(b engine.Banner) string {
	switch b {
	case engine.BannerPause:
		return constants.BannerTextPause
	case engine.BannerWin:
		return constants.BannerTextWin
	case engine.BannerLose:
		return constants.BannerTextLose
	}
	return ""
}

// KillsText formats the kill counter, levels without a target show the count alone
func KillsText(kills, target int) string {
	if target > 0 {
		return fmt.Sprintf("KILLS %d/%d", kills, target)
	}
	return fmt.Sprintf("KILLS %d", kills)
}
