package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sky-fighter/actor"
)

// RGB color definitions for entities and HUD
var (
	RgbPlayer           = tcell.NewRGBColor(80, 200, 255)  // Sky blue
	RgbEnemy            = tcell.NewRGBColor(230, 70, 60)   // Red
	RgbElite            = tcell.NewRGBColor(255, 150, 40)  // Orange
	RgbBoss             = tcell.NewRGBColor(200, 60, 200)  // Magenta
	RgbPlayerProjectile = tcell.NewRGBColor(255, 255, 120) // Pale yellow
	RgbEnemyProjectile  = tcell.NewRGBColor(255, 90, 90)   // Light red
	RgbEliteProjectile  = tcell.NewRGBColor(255, 180, 80)  // Light orange
	RgbBossProjectile   = tcell.NewRGBColor(240, 120, 255) // Light magenta
	RgbAsteroid         = tcell.NewRGBColor(150, 120, 90)  // Brown
	RgbSatellite        = tcell.NewRGBColor(190, 190, 200) // Steel
	RgbShield           = tcell.NewRGBColor(0, 220, 220)   // Cyan
	RgbStar             = tcell.NewRGBColor(200, 200, 200) // Light gray

	RgbHUDBackground = tcell.NewRGBColor(0, 0, 0)
	RgbHeart         = tcell.NewRGBColor(255, 60, 90)
	RgbHUDText       = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText    = tcell.NewRGBColor(140, 140, 140)
	RgbAlertBg       = tcell.NewRGBColor(200, 50, 50)
	RgbBannerBg      = tcell.NewRGBColor(255, 255, 255)
	RgbBannerText    = tcell.NewRGBColor(0, 0, 0)
)

var kindColors = map[actor.Kind]tcell.Color{
	actor.KindPlayer:           RgbPlayer,
	actor.KindEnemy:            RgbEnemy,
	actor.KindElite:            RgbElite,
	actor.KindBoss:             RgbBoss,
	actor.KindPlayerProjectile: RgbPlayerProjectile,
	actor.KindEnemyProjectile:  RgbEnemyProjectile,
	actor.KindEliteProjectile:  RgbEliteProjectile,
	actor.KindBossProjectile:   RgbBossProjectile,
	actor.KindAsteroid:         RgbAsteroid,
	actor.KindSatellite:        RgbSatellite,
}

// KindColor returns the draw color of an entity kind
func KindColor(k actor.Kind) tcell.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return RgbHUDText
}

// KindGlyph returns the fill rune of an entity kind
func KindGlyph(k actor.Kind) rune {
	switch {
	case k.IsProjectile():
		return '━'
	case k == actor.KindAsteroid:
		return '▓'
	case k == actor.KindSatellite:
		return '╬'
	default:
		return '█'
	}
}

// BackgroundColor converts a background asset to a terminal color
func BackgroundColor(bg Background) tcell.Color {
	return tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
}

// RGBA converts a palette color for image-based frontends
func RGBA(c tcell.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: alpha}
}

// BackgroundRGBA converts a background asset for image-based frontends
func BackgroundRGBA(bg Background) color.RGBA {
	return color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}
}
