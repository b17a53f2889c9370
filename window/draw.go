package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/sky-fighter/engine"
	"github.com/lixenwraith/sky-fighter/render"
	"golang.org/x/image/font/basicfont"
)

const (
	heartSize    = 14
	heartSpacing = 20
	hudMargin    = 10
	shieldPad    = 4
	starStride   = 53
)

var (
	hudFace    = text.NewGoXFace(basicfont.Face7x13)
	hudText    = color.RGBA{255, 255, 255, 255}
	bannerBack = color.RGBA{0, 0, 0, 190}
)

// drawFrame paints a snapshot in world coordinates
func drawFrame(screen *ebiten.Image, f render.Frame) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	screen.Fill(render.BackgroundRGBA(f.Background))
	if f.Background.StarEvery > 0 {
		star := render.RGBA(render.RgbStar, 0xff)
		step := starStride * f.Background.StarEvery
		for n := 0; n < b.Dx()*b.Dy(); n += step {
			vector.DrawFilledRect(screen, float32(n%b.Dx()), float32(n/b.Dx()), 2, 2, star, false)
		}
	}

	for _, e := range f.Entities {
		alpha := uint8(0xff)
		if e.Dim {
			alpha = 0x80
		}
		r := e.Bounds
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			render.RGBA(render.KindColor(e.Kind), alpha), false)
		if e.Shield {
			vector.StrokeRect(screen, float32(r.X)-shieldPad, float32(r.Y)-shieldPad,
				float32(r.Width)+2*shieldPad, float32(r.Height)+2*shieldPad, 3,
				render.RGBA(render.RgbShield, 0xff), false)
		}
	}

	heart := render.RGBA(render.RgbHeart, 0xff)
	for i := 0; i < f.Hearts; i++ {
		vector.DrawFilledRect(screen, float32(hudMargin+i*heartSpacing), hudMargin, heartSize, heartSize, heart, false)
	}

	kills := render.KillsText(f.Kills, f.Target)
	kw, _ := text.Measure(kills, hudFace, 0)
	drawText(screen, kills, float64(w)-kw-hudMargin, hudMargin, hudText)

	row := 0
	for bn := engine.Banner(0); bn < engine.BannerCount; bn++ {
		if !f.Banners[bn] {
			continue
		}
		caption := render.BannerText(bn)
		tw, th := text.Measure(caption, hudFace, 0)
		x := (float64(w) - tw) / 2
		y := float64(h)/2 + float64(row)*(th+12)
		vector.DrawFilledRect(screen, float32(x-8), float32(y-4), float32(tw+16), float32(th+8), bannerBack, false)
		drawText(screen, caption, x, y, hudText)
		row++
	}

	if f.Alert != "" {
		_, th := text.Measure(f.Alert, hudFace, 0)
		drawText(screen, f.Alert, hudMargin, float64(h)-th-hudMargin, render.RGBA(render.RgbAlertBg, 0xff))
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}
