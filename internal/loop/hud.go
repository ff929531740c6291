package loop

import "fmt"

const controlsHelp = "←/→ turn  ↑ boost  space shoot  q quit"

// drawHUD writes the score line above the canvas when it changes.
func (s *Session) drawHUD() {
	hud := fmt.Sprintf("SCORE %-6d  %s", s.game.Score(), controlsHelp)
	if hud == s.lastHUD {
		return
	}
	s.lastHUD = hud

	width := s.layout.cols
	runes := []rune(hud)
	if len(runes) > width {
		runes = runes[:width]
	}
	s.out.WriteAt(1, 0, fmt.Sprintf("%-*s", width, string(runes)))
}
