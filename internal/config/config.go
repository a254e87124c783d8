// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// World scale
	TileSize    = 1.0
	HeightScale = 1.0
	BoardSize   = 20 // default level is BoardSize x BoardSize

	// Wave pacing
	SpawnInterval     = 1.0 // seconds between two spawns of one wave
	WaveCompleteDelay = 1500 * time.Millisecond

	// Agents snap to the next cell once closer than this (world units).
	ArrivalThreshold = 0.1

	// Turret rotation smoothing, fraction of the remaining arc per second
	TurretTurnRate = 8.0

	// Rendering
	CellPixels      = 36.0 // one tile at zoom 1
	CameraPanSpeed  = 600.0
	CameraZoomStep  = 0.1
	CameraMinZoom   = 0.3
	CameraMaxZoom   = 3.0
	PreviewAlpha    = 140
	EnemyRadius     = 0.3 // fraction of a tile
	TowerRadius     = 0.4
	HUDMargin       = 16
	WavePanelWidth  = 260
	WavePanelHeight = 150

	// Terminal viewer
	TermFrameInterval = 50 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{44, 62, 80, 255}
	EmptyLightColor  = color.RGBA{244, 208, 63, 255} // warm sand
	EmptyDarkColor   = color.RGBA{212, 172, 13, 255} // darker sand
	PathColor        = color.RGBA{150, 110, 70, 255}
	SpawnColor       = color.RGBA{0, 200, 0, 255}
	EndColor         = color.RGBA{200, 0, 0, 255}
	BlockedColor     = color.RGBA{90, 90, 90, 255}
	PlaceableColor   = color.RGBA{0, 255, 0, PreviewAlpha}
	UnplaceableColor = color.RGBA{255, 0, 0, PreviewAlpha}
	SelectionColor   = color.RGBA{255, 255, 0, 255}
	PanelColor       = color.RGBA{50, 38, 25, 240}
	PanelBorderColor = color.RGBA{72, 56, 40, 255}
	TextColor        = color.RGBA{230, 213, 186, 255}
	HeaderColor      = color.RGBA{255, 215, 0, 255}
	CompleteColor    = color.RGBA{144, 238, 144, 255}
	ButtonColor      = color.RGBA{139, 115, 85, 255}
	ButtonHoverColor = color.RGBA{155, 131, 101, 255}
	ButtonOffColor   = color.RGBA{91, 91, 91, 255}
)
