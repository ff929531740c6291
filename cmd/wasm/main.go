//go:build js && wasm

// Command wasm exposes one game to the browser. The page defines the drawing
// callbacks (clear_screen, draw_particle, draw_bullet, draw_enemy,
// draw_player) and drives the game through the exported functions.
package main

import (
	"syscall/js"

	"github.com/tomz197/rocket/internal/game"
	"github.com/tomz197/rocket/internal/input"
)

// jsRenderer forwards draw commands to global JavaScript functions.
type jsRenderer struct {
	clear, particle, bullet, enemy, player js.Value
}

func newJSRenderer(global js.Value) *jsRenderer {
	return &jsRenderer{
		clear:    global.Get("clear_screen"),
		particle: global.Get("draw_particle"),
		bullet:   global.Get("draw_bullet"),
		enemy:    global.Get("draw_enemy"),
		player:   global.Get("draw_player"),
	}
}

func (r *jsRenderer) Clear() { r.clear.Invoke() }
func (r *jsRenderer) DrawParticle(x, y, decay float64) { r.particle.Invoke(x, y, decay) }
func (r *jsRenderer) DrawBullet(x, y float64) { r.bullet.Invoke(x, y) }
func (r *jsRenderer) DrawEnemy(x, y float64) { r.enemy.Invoke(x, y) }
func (r *jsRenderer) DrawPlayer(x, y, heading float64) { r.player.Invoke(x, y, heading) }

func main() {
	g := game.New(game.DefaultConfig())
	global := js.Global()

	toggle := func(a input.Action) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			g.SetAction(a, len(args) > 0 && args[0].Truthy())
			return nil
		})
	}
	global.Set("toggle_shoot", toggle(input.ActionShoot))
	global.Set("toggle_boost", toggle(input.ActionBoost))
	global.Set("toggle_turn_left", toggle(input.ActionRotateLeft))
	global.Set("toggle_turn_right", toggle(input.ActionRotateRight))

	// set_action(name, on) returns an error message, or null on success.
	global.Set("set_action", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return "set_action: want (name, on)"
		}
		if err := g.SetActionByName(args[0].String(), args[1].Truthy()); err != nil {
			return err.Error()
		}
		return nil
	}))

	global.Set("update", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			g.Update(args[0].Float())
		}
		return nil
	}))

	// The callbacks are looked up on every call so the page may define them after loading.
	global.Set("draw", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		g.Draw(newJSRenderer(global))
		return nil
	}))

	global.Set("score", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		return g.Score()
	}))

	select {}
}
