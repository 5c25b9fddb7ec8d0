package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▲'
	EnemyChar     = 'W'
	BulletChar    = '│'
	ExplosionChar = '*'
	HeartChar     = '♥'
)

// Enemy colors by screen row (cycling through)
var enemyColors = []core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
}

// projection maps the x/z plane onto the field area of the screen.
// The far boundary is the top row, the player row the bottom one.
type projection struct {
	left, top  int
	cols, rows int
	halfWidth  float64
	near, far  float64
}

func (g *Game) projection(dst *core.Screen) projection {
	// Row 0 is the HUD, the field box fills the rest
	return projection{
		left:      1,
		top:       2,
		cols:      dst.Width() - 2,
		rows:      dst.Height() - 3,
		halfWidth: g.cfg.Playfield.HalfWidth(),
		near:      g.cfg.Playfield.PlayerZ,
		far:       g.cfg.Playfield.Depth,
	}
}

// col returns the screen column of world x.
func (p projection) col(x float64) int {
	u := (x + p.halfWidth) / (2 * p.halfWidth)
	c := int(math.Round(u * float64(p.cols-1)))
	return p.left + core.Clamp(c, 0, p.cols-1)
}

// row returns the screen row of world z.
func (p projection) row(z float64) int {
	v := (p.far - z) / (p.far - p.near)
	r := int(math.Round(v * float64(p.rows-1)))
	return p.top + core.Clamp(r, 0, p.rows-1)
}

// span returns the columns covered by an entity centered at x.
func (p projection) span(x, halfW float64) (from, to int) {
	return p.col(x - halfW), p.col(x + halfW)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.world == nil {
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1))

	proj := g.projection(dst)
	g.renderEnemies(dst, proj)
	g.renderBullets(dst, proj)
	g.renderExplosions(dst, proj)
	g.renderPlayer(dst, proj)
	g.renderOverlay(dst)
}

// renderHUD draws the score, health, and enemies left.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	health := g.State().Health
	label := "Health: "
	hearts := strings.Repeat(string(HeartChar), health)
	x := (dst.Width() - len(label) - health) / 2
	dst.DrawText(x, 0, label)
	dst.DrawTextColored(x+len(label), 0, hearts, core.ColorRed)

	left := fmt.Sprintf("Enemies: %d", g.world.Store.EnemyCount())
	dst.DrawText(dst.Width()-len(left)-1, 0, left)
}

func (g *Game) renderEnemies(dst *core.Screen, proj projection) {
	halfW := g.cfg.Enemies.HalfWidth
	for _, e := range g.world.Store.Enemies() {
		y := proj.row(e.Pos.Z)
		color := enemyColors[(y-proj.top)%len(enemyColors)]
		from, to := proj.span(e.Pos.X, halfW)
		for x := from; x <= to; x++ {
			dst.SetColored(x, y, EnemyChar, color)
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen, proj projection) {
	for _, b := range g.world.Store.Bullets() {
		dst.SetColored(proj.col(b.Pos.X), proj.row(b.Pos.Z), BulletChar, core.ColorBrightYellow)
	}
}

// renderExplosions marks enemies destroyed during the last tick.
func (g *Game) renderExplosions(dst *core.Screen, proj projection) {
	for _, ev := range g.last.Destroyed {
		dst.SetColored(proj.col(ev.Pos.X), proj.row(ev.Pos.Z), ExplosionChar, core.ColorOrange)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, proj projection) {
	p, ok := g.world.Store.Player()
	if !ok {
		return
	}
	color := core.ColorBrightGreen
	if len(g.last.PlayerHits) > 0 || p.Health == 0 {
		color = core.ColorBrightRed
	}
	y := proj.row(p.Pos.Z)
	from, to := proj.span(p.Pos.X, g.cfg.Player.HalfWidth)
	for x := from; x <= to; x++ {
		dst.SetColored(x, y, PlayerChar, color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateCleared:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "INVADERS CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
