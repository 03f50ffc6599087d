package missile

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/games/missile/sim"
)

// Visual characters for rendering
const (
	HostileHead   = '◆'
	DefenderHead  = '●'
	TrailChar     = '·'
	TargetChar    = 'x'
	CrosshairChar = '+'
	BlastRim      = '█'
	BlastFill     = '▒'
	BuildingChar  = '▓'
	SiloChar      = '█'
	SiloTopChar   = '▲'
	DebrisChar    = '▂'
	GroundTop     = '▀'
	GroundFill    = '░'
	AmmoFull      = '■'
	AmmoEmpty     = '□'
	BarFull       = '▰'
	BarEmpty      = '▱'
)

const reloadBarWidth = 4

var pickupGlyphs = map[sim.PickupKind]rune{
	sim.PickupScore:      '$',
	sim.PickupBlastBonus: 'B',
	sim.PickupSpeedBonus: 'S',
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	switch g.engine.State() {
	case sim.StateMainMenu:
		g.renderMainMenu(dst)
	case sim.StateOptionsMenu:
		g.renderOptions(dst)
	case sim.StateGame:
		g.renderScene(dst)
		g.renderHUD(dst)
		g.renderCrosshair(dst)
	case sim.StatePaused:
		g.renderScene(dst)
		g.renderHUD(dst)
		g.renderMenuBox(dst, "PAUSED", nil)
	case sim.StateGameOver:
		g.renderScene(dst)
		g.renderHUD(dst)
		g.renderMenuBox(dst, "GAME OVER", g.summary())
	}
}

// cell projects a world point to a screen cell below the HUD.
func (g *Game) cell(p sim.Vec2) (int, int) {
	col, row := g.vp.ToCell(p.X, p.Y)
	return col, row + hudRows
}

func (g *Game) renderScene(dst *core.Screen) {
	views := g.engine.Entities()

	// Back to front: ground, wreckage, structures, trails, blasts, heads.
	for _, v := range views {
		if v.Kind == sim.KindGround {
			g.renderGround(dst, v)
		}
	}
	for _, v := range views {
		switch v.Kind {
		case sim.KindDebris:
			g.renderDebris(dst, v)
		case sim.KindStructure:
			g.renderStructure(dst, v)
		}
	}
	for _, v := range views {
		if v.Kind == sim.KindProjectile {
			g.renderTrail(dst, v)
		}
	}
	for _, v := range views {
		if v.Kind == sim.KindBlast {
			g.renderBlast(dst, v)
		}
	}
	for _, v := range views {
		switch v.Kind {
		case sim.KindProjectile:
			g.renderHead(dst, v)
		case sim.KindPickup:
			col, row := g.cell(v.Pos)
			dst.SetColored(col, row, pickupGlyphs[v.Pickup], g.theme.Pickup)
		}
	}
}

func (g *Game) renderGround(dst *core.Screen, v sim.View) {
	_, row := g.cell(v.Pos)
	dst.DrawHLine(0, row, dst.Width(), GroundTop, g.theme.Ground)
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, g.theme.Ground)
	}
}

// footprintRect returns the cells covered by a structure footprint at p.
func (g *Game) footprintRect(p sim.Vec2, fp sim.Footprint) core.Rect {
	cy := p.Y + fp.OffsetY
	x0, y0 := g.cell(sim.V(p.X-fp.HalfW, cy+fp.HalfH))
	x1, y1 := g.cell(sim.V(p.X+fp.HalfW, cy-fp.HalfH))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (g *Game) renderStructure(dst *core.Screen, v sim.View) {
	params := g.engine.Params()
	if v.Structure == sim.StructureInstallation {
		r := g.footprintRect(v.Pos, params.Installation)
		dst.DrawRectColored(r, SiloChar, g.theme.Installation)
		col, _ := g.cell(v.Pos)
		dst.SetColored(col, r.Y, SiloTopChar, g.theme.Installation)
		return
	}
	r := g.footprintRect(v.Pos, params.Building)
	dst.DrawRectColored(r, BuildingChar, g.theme.Building)
}

func (g *Game) renderDebris(dst *core.Screen, v sim.View) {
	params := g.engine.Params()
	fp := params.Building
	if v.Structure == sim.StructureInstallation {
		fp = params.Installation
	}
	x0, row := g.cell(sim.V(v.Pos.X-fp.HalfW, v.Pos.Y))
	x1, _ := g.cell(sim.V(v.Pos.X+fp.HalfW, v.Pos.Y))
	dst.DrawHLine(x0, row, max(x1-x0, 1), DebrisChar, g.theme.Debris)
}

func (g *Game) renderTrail(dst *core.Screen, v sim.View) {
	ox, oy := g.cell(v.Origin)
	px, py := g.cell(v.Pos)
	dst.DrawLine(ox, oy, px, py, TrailChar, g.theme.Trail)
	if v.Team == sim.TeamDefender {
		tx, ty := g.cell(v.Target)
		dst.SetColored(tx, ty, TargetChar, g.theme.Defender)
	}
}

func (g *Game) renderHead(dst *core.Screen, v sim.View) {
	col, row := g.cell(v.Pos)
	if v.Team == sim.TeamHostile {
		dst.SetColored(col, row, HostileHead, g.theme.Hostile)
		return
	}
	dst.SetColored(col, row, DefenderHead, g.theme.Defender)
}

func (g *Game) renderBlast(dst *core.Screen, v sim.View) {
	col, row := g.cell(v.Pos)
	_, ch := g.vp.CellSize()
	if ch == 0 {
		return
	}
	radius := v.Radius / ch
	aspect := g.vp.Aspect()

	c := g.theme.Blast
	if v.Team == sim.TeamHostile {
		c = g.theme.HostileBlast
	}
	for r := radius - 1; r >= 0.5; r-- {
		dst.DrawCircle(col, row, r, aspect, BlastFill, c)
	}
	dst.DrawCircle(col, row, radius, aspect, BlastRim, c)
}

func (g *Game) renderCrosshair(dst *core.Screen) {
	col, row := g.cell(g.aim)
	dst.SetColored(col, row, CrosshairChar, g.theme.HUD)
}

// renderHUD draws score, installation ammo and reloads, and active bonuses.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("SCORE %06d", g.engine.Score())
	dst.DrawTextColored(1, 0, score, g.theme.HUD)

	x := len(score) + 3
	for _, loc := range sim.Locations {
		part := g.siloStatus(loc)
		dst.DrawTextColored(x, 0, part, g.theme.Installation)
		x += len([]rune(part)) + 2
	}

	bonus := g.bonusStatus()
	if bonus != "" {
		dst.DrawTextColored(dst.Width()-len(bonus)-1, 0, bonus, g.theme.Pickup)
	}
}

// siloStatus renders one installation as "L ■■□ ▰▰▱▱".
func (g *Game) siloStatus(loc sim.Location) string {
	tag := strings.ToUpper(loc.String()[:1])
	ammo, ok := g.engine.Ammo(loc)
	if !ok {
		return tag + " " + strings.Repeat("-", g.engine.Params().SiloMaxAmmo+reloadBarWidth+1)
	}

	var sb strings.Builder
	sb.WriteString(tag)
	sb.WriteRune(' ')
	for i := range g.engine.Params().SiloMaxAmmo {
		if i < ammo {
			sb.WriteRune(AmmoFull)
		} else {
			sb.WriteRune(AmmoEmpty)
		}
	}
	sb.WriteRune(' ')
	filled := int(g.engine.ReloadProgress(loc) * reloadBarWidth)
	for i := range reloadBarWidth {
		if i < filled {
			sb.WriteRune(BarFull)
		} else {
			sb.WriteRune(BarEmpty)
		}
	}
	return sb.String()
}

func (g *Game) bonusStatus() string {
	st := g.engine.Status()
	var parts []string
	if st.BlastBonusLeft > 0 {
		parts = append(parts, fmt.Sprintf("BLAST x%g %ds", st.BlastMultiplier, int(st.BlastBonusLeft+0.999)))
	}
	if st.SpeedBonusLeft > 0 {
		parts = append(parts, fmt.Sprintf("SPEED %ds", int(st.SpeedBonusLeft+0.999)))
	}
	return strings.Join(parts, "  ")
}

func (g *Game) renderMenuItems(dst *core.Screen, y int) int {
	for i, it := range menuFor(g.engine.State()) {
		text := "  " + g.label(it) + "  "
		c := core.ColorGray
		if i == g.cursor {
			text = "> " + g.label(it) + " <"
			c = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(y, text, c)
		y++
	}
	return y
}

var titleArt = []string{
	"█▀▄▀█ █ █▀▀ █▀▀ █ █   █▀▀",
	"█ ▀ █ █ ▀▀█ ▀▀█ █ █   █▀▀",
	"▀   ▀ ▀ ▀▀▀ ▀▀▀ ▀ ▀▀▀ ▀▀▀",
}

func (g *Game) renderMainMenu(dst *core.Screen) {
	y := max(dst.Height()/2-len(titleArt)-4, 0)
	for _, line := range titleArt {
		dst.DrawTextCenteredColored(y, line, g.theme.Hostile)
		y++
	}
	y++
	dst.DrawTextCenteredColored(y, g.Title(), g.theme.HUD)
	y += 2

	y = g.renderMenuItems(dst, y)
	y++
	dst.DrawTextCenteredColored(y, "up/down select · enter confirm · o options", core.ColorDarkGray)
}

func (g *Game) renderOptions(dst *core.Screen) {
	y := 2
	dst.DrawTextCenteredColored(y, "OPTIONS", g.theme.HUD)
	y += 2
	y = g.renderMenuItems(dst, y)
	y += 2

	dst.DrawTextCenteredColored(y, "Keys", g.theme.HUD)
	y++
	lines := g.keyLines()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	x := max((dst.Width()-width)/2, 0)
	for _, l := range lines {
		if y >= dst.Height() {
			break
		}
		dst.DrawTextColored(x, y, l, core.ColorGray)
		y++
	}
}

// keyLines lists every action with its bound keys.
func (g *Game) keyLines() []string {
	out := make([]string, 0, len(core.Actions()))
	for _, a := range core.Actions() {
		keys := g.bindings[a]
		names := make([]string, len(keys))
		for i, k := range keys {
			if k == " " {
				k = "space"
			}
			names[i] = k
		}
		out = append(out, fmt.Sprintf("%-12s %s", a, strings.Join(names, ", ")))
	}
	return out
}

// summary returns the game-over statistics lines.
func (g *Game) summary() []string {
	st := g.State()
	return []string{
		fmt.Sprintf("Score       %d", st.Score),
		fmt.Sprintf("Intercepts  %d / %d shots (%.0f%%)", st.Stats.Intercepts, st.Stats.Shots, st.Stats.Accuracy()*100),
		fmt.Sprintf("Pickups     %d", st.Stats.Pickups),
		fmt.Sprintf("Lost        %d structures", st.Stats.StructuresLost),
		fmt.Sprintf("Time        %s", st.Stats.Duration.Truncate(time.Second)),
	}
}

// renderMenuBox draws a framed overlay with a title, optional body lines
// and the menu of the current state.
func (g *Game) renderMenuBox(dst *core.Screen, title string, body []string) {
	items := menuFor(g.engine.State())
	width := 24
	for _, l := range body {
		width = max(width, len([]rune(l))+4)
	}
	height := 4 + len(items)
	if len(body) > 0 {
		height += len(body) + 1
	}

	r := core.CenteredRect(dst.Width(), dst.Height(), width, height)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, g.theme.HUD)

	y := r.Y + 1
	dst.DrawTextCenteredColored(y, title, g.theme.Hostile)
	y += 2
	for _, l := range body {
		dst.DrawTextColored(r.X+2, y, l, g.theme.HUD)
		y++
	}
	if len(body) > 0 {
		y++
	}
	g.renderMenuItems(dst, y)
}
