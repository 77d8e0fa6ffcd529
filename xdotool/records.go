// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package xdotool

// Geometry is the position and size of a window as reported by getwindowgeometry.
type Geometry struct {
	Window int `json:"window" yaml:"window"`
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Screen int `json:"screen" yaml:"screen"`
}

// MouseLocation is the pointer position and the window under it.
type MouseLocation struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Screen int `json:"screen" yaml:"screen"`
	Window int `json:"window" yaml:"window"`
}

// Viewport is the position of the current desktop viewport.
type Viewport struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// DisplayGeometry is the size of the current screen.
type DisplayGeometry struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Field orders differ between the plain and the --shell output of xdotool.
var (
	geometryKeys      = []string{"window", "x", "y", "screen", "width", "height"}
	geometryShellKeys = []string{"window", "x", "y", "width", "height", "screen"}
	mouseKeys         = []string{"x", "y", "screen", "window"}
	viewportKeys      = []string{"x", "y"}
	displayKeys       = []string{"width", "height"}
)

func newGeometry(v map[string]int) Geometry {
	return Geometry{
		Window: v["window"],
		X:      v["x"],
		Y:      v["y"],
		Width:  v["width"],
		Height: v["height"],
		Screen: v["screen"],
	}
}

func newMouseLocation(v map[string]int) MouseLocation {
	return MouseLocation{X: v["x"], Y: v["y"], Screen: v["screen"], Window: v["window"]}
}

func newViewport(v map[string]int) Viewport {
	return Viewport{X: v["x"], Y: v["y"]}
}

func newDisplayGeometry(v map[string]int) DisplayGeometry {
	return DisplayGeometry{Width: v["width"], Height: v["height"]}
}
