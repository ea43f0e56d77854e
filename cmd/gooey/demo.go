package main

import (
	"fmt"

	gooey "github.com/duanebester/gooey-sub004"
)

// buildDemo declares a small application shell: a header bar, a sidebar of
// navigation rows, a scrollable article column, and a centered dialog
// floating above it all. It exercises every command kind the engine emits.
func buildDemo(c *gooey.Context) error {
	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("app"),
		Layout: gooey.LayoutConfig{
			Sizing:    gooey.Sizing{Width: gooey.Grow(), Height: gooey.Grow()},
			Direction: gooey.TopToBottom,
		},
		BackgroundColor: gooey.Color{R: 24, G: 26, B: 30, A: 255},
	}); err != nil {
		return err
	}

	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("header"),
		Layout: gooey.LayoutConfig{
			Sizing:  gooey.Sizing{Width: gooey.Grow(), Height: gooey.Fixed(48)},
			Padding: gooey.PaddingSymmetric(16, 0),
			Align:   gooey.AlignCenter,
			Justify: gooey.JustifySpaceBetween,
		},
		BackgroundColor: gooey.Color{R: 34, G: 37, B: 42, A: 255},
	}); err != nil {
		return err
	}
	if err := c.Text("gooey demo", gooey.TextConfig{
		FontSize: 18,
		Color:    gooey.Color{R: 235, G: 235, B: 235, A: 255},
	}); err != nil {
		return err
	}
	if err := c.SVG(gooey.SVGConfig{
		Data: "M4 6h16M4 12h16M4 18h16",
		Tint: gooey.Color{R: 200, G: 200, B: 200, A: 255},
		Dims: gooey.Dimensions{Width: 24, Height: 24},
	}); err != nil {
		return err
	}
	c.Close()

	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("body"),
		Layout: gooey.LayoutConfig{
			Sizing: gooey.Sizing{Width: gooey.Grow(), Height: gooey.Grow()},
		},
	}); err != nil {
		return err
	}

	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("sidebar"),
		Layout: gooey.LayoutConfig{
			Sizing:    gooey.Sizing{Width: gooey.Fixed(200), Height: gooey.Grow()},
			Direction: gooey.TopToBottom,
			ChildGap:  2,
			Padding:   gooey.PaddingAll(8),
		},
		BackgroundColor: gooey.Color{R: 29, G: 32, B: 36, A: 255},
	}); err != nil {
		return err
	}
	for i, label := range []string{"inbox", "drafts", "archive", "settings"} {
		if err := c.Open(gooey.Declaration{
			ID: gooey.HashIndexed("nav", uint32(i)),
			Layout: gooey.LayoutConfig{
				Sizing:  gooey.Sizing{Width: gooey.Grow(), Height: gooey.Fixed(32)},
				Padding: gooey.PaddingSymmetric(10, 6),
			},
			CornerRadius: gooey.CornerRadiusAll(4),
		}); err != nil {
			return err
		}
		if err := c.Text(label, gooey.TextConfig{
			FontSize: 14,
			Color:    gooey.Color{R: 210, G: 210, B: 210, A: 255},
		}); err != nil {
			return err
		}
		c.Close()
	}
	c.Close()

	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("article"),
		Layout: gooey.LayoutConfig{
			Sizing:    gooey.Sizing{Width: gooey.Grow(), Height: gooey.Grow()},
			Direction: gooey.TopToBottom,
			ChildGap:  12,
			Padding:   gooey.PaddingAll(24),
		},
		Scroll: gooey.ScrollConfig{Vertical: true},
	}); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		if err := c.Text(
			fmt.Sprintf("paragraph %d: the engine wraps this text against the column width, "+
				"breaking at word boundaries and never splitting a word in two", i+1),
			gooey.TextConfig{FontSize: 14, Color: gooey.Color{R: 225, G: 225, B: 225, A: 255}},
		); err != nil {
			return err
		}
	}
	if err := c.Open(gooey.Declaration{
		ID:          gooey.HashString("hero"),
		AspectRatio: 16.0 / 9.0,
		Layout: gooey.LayoutConfig{
			Sizing: gooey.Sizing{Width: gooey.Grow(), Height: gooey.Fit()},
		},
	}); err != nil {
		return err
	}
	if err := c.Image(gooey.ImageConfig{
		SourceDims: gooey.Dimensions{Width: 1600, Height: 900},
	}); err != nil {
		return err
	}
	c.Close()
	if err := c.Canvas(gooey.CanvasConfig{}); err != nil {
		return err
	}
	c.Close()

	c.Close() // body

	if err := c.Open(gooey.Declaration{
		ID: gooey.HashString("dialog"),
		Floating: gooey.FloatingConfig{
			AttachTo: gooey.AttachToRoot,
			AttachAt: gooey.AttachCenterCenter,
			Anchor:   gooey.AttachCenterCenter,
			ZIndex:   10,
		},
		Layout: gooey.LayoutConfig{
			Sizing:    gooey.Sizing{Width: gooey.Fixed(360), Height: gooey.Fit()},
			Direction: gooey.TopToBottom,
			ChildGap:  12,
			Padding:   gooey.PaddingAll(20),
		},
		BackgroundColor: gooey.Color{R: 44, G: 48, B: 54, A: 255},
		CornerRadius:    gooey.CornerRadiusAll(8),
		Border: gooey.BorderConfig{
			Color: gooey.Color{R: 70, G: 76, B: 84, A: 255},
			Width: gooey.BorderWidth{Left: 1, Right: 1, Top: 1, Bottom: 1},
		},
		Shadow: gooey.ShadowConfig{
			Color:  gooey.Color{A: 90},
			Offset: gooey.Vector2{Y: 6},
			Blur:   24,
		},
	}); err != nil {
		return err
	}
	if err := c.Text("unsaved changes", gooey.TextConfig{
		FontSize: 16,
		Color:    gooey.Color{R: 240, G: 240, B: 240, A: 255},
	}); err != nil {
		return err
	}
	if err := c.Text("your draft has edits that have not been saved yet, close anyway?",
		gooey.TextConfig{FontSize: 13, Color: gooey.Color{R: 190, G: 190, B: 190, A: 255}},
	); err != nil {
		return err
	}
	c.Close()

	c.Close() // app
	return nil
}
