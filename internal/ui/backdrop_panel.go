package ui

import "strings"

// RenderBackdropPanel wraps the particle canvas with a border. When the
// backdrop is hidden a placeholder is drawn instead.
func RenderBackdropPanel(width, height int, canvas string, visible bool) string {
	if !visible {
		innerW, innerH := PanelInner(width, height)
		msg := "BACKDROP OFF  [B] to show"
		lines := make([]string, innerH/2)
		lines = append(lines, pad((innerW-len(msg))/2)+StyleHelp.Render(msg))
		return renderPanel(lines, width, height, false)
	}
	return renderPanel(strings.Split(canvas, "\n"), width, height, false)
}
