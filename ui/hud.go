package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score        int
	Streak       int
	Health       int
	MaxHealth    int
	LiveVehicles int
	Invulnerable bool
	Tick         int64
	FPS          int32
	Paused       bool
	DebugOn      bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme

	h.renderer.DrawPanel(5, 5, 250, 96)

	y := int32(12)
	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 12, y, th.TitleFontSize, rl.White)
	y += 26

	streakColor := th.LabelColor
	if data.Streak >= 2 {
		streakColor = th.SectionHeader
	}
	rl.DrawText(fmt.Sprintf("Streak: x%d", data.Streak), 12, y, th.FontSize, streakColor)
	y += th.LineHeight

	y = h.renderer.DrawHealthBar(12, y, "Hull", data.Health, data.MaxHealth, 230)

	if data.Invulnerable {
		rl.DrawText("SHIELDED", 12, y, th.FontSize, th.SectionHeader)
	}

	// Bottom-left run info.
	rl.DrawText(
		fmt.Sprintf("Vehicles: %d | Tick: %d | FPS: %d", data.LiveVehicles, data.Tick, data.FPS),
		10, data.ScreenHeight-46, th.FontSize, rl.LightGray,
	)

	if data.Paused {
		center := data.ScreenWidth / 2
		rl.DrawText("PAUSED", center-40, 16, th.TitleFontSize, rl.Yellow)
	}
	if data.DebugOn {
		rl.DrawText("DEBUG", data.ScreenWidth-70, 16, th.FontSize, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
