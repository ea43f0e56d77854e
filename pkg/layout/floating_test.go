package layout

import "testing"

func TestFloating_DoesNotInflateFitParent(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 800, 600, func(c *Context) {
		c.Open(Declaration{ID: HashString("menu"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fit(), Height: Fit()},
		}})
		c.Open(Declaration{ID: HashString("label"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(50), Height: Fixed(20)},
		}})
		c.Close()
		c.Open(Declaration{
			ID:       HashString("dropdown"),
			Floating: FloatingConfig{AttachTo: AttachToParent},
			Layout: LayoutConfig{
				Sizing: Sizing{Width: Fixed(500), Height: Fixed(300)},
			},
		})
		c.Close()
		c.Close()
	})
	box, ok := c.BoundingBox(HashString("menu"))
	if !ok {
		t.Fatal("BoundingBox(menu) not found")
	}
	if box.Width != 50 || box.Height != 20 {
		t.Errorf("menu = %vx%v, want 50x20 (floating content must not affect flow)", box.Width, box.Height)
	}
}

func TestFloating_AttachAnchors(t *testing.T) {
	tests := map[string]struct {
		cfg   FloatingConfig
		wantX float32
		wantY float32
	}{
		"right edge of the parent": {
			cfg:   FloatingConfig{AttachTo: AttachToParent, AttachAt: AttachRightTop, Anchor: AttachLeftTop},
			wantX: 200, wantY: 0,
		},
		"centered over the parent": {
			cfg:   FloatingConfig{AttachTo: AttachToParent, AttachAt: AttachCenterCenter, Anchor: AttachCenterCenter},
			wantX: 50, wantY: 75,
		},
		"below the parent with an offset": {
			cfg:   FloatingConfig{AttachTo: AttachToParent, AttachAt: AttachLeftBottom, Anchor: AttachLeftTop, Offset: Vector2{X: 4, Y: 4}},
			wantX: 4, wantY: 204,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestContext()
			buildFrame(t, c, 800, 600, func(c *Context) {
				c.Open(Declaration{Layout: LayoutConfig{
					Sizing: Sizing{Width: Fixed(200), Height: Fixed(200)},
				}})
				c.Open(Declaration{
					ID:       HashString("tip"),
					Floating: tt.cfg,
					Layout: LayoutConfig{
						Sizing: Sizing{Width: Fixed(100), Height: Fixed(50)},
					},
				})
				c.Close()
				c.Close()
			})
			box, ok := c.BoundingBox(HashString("tip"))
			if !ok {
				t.Fatal("BoundingBox(tip) not found")
			}
			if !approx(box.X, tt.wantX) || !approx(box.Y, tt.wantY) {
				t.Errorf("tip at (%v, %v), want (%v, %v)", box.X, box.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFloating_ClampsIntoViewport(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 300, 200, func(c *Context) {
		c.Open(Declaration{Layout: LayoutConfig{
			Sizing: Sizing{Width: Grow(), Height: Grow()},
		}})
		c.Open(Declaration{
			ID: HashString("toast"),
			Floating: FloatingConfig{
				AttachTo: AttachToRoot,
				AttachAt: AttachRightBottom,
				Anchor:   AttachLeftTop, // would start at (300, 200), fully off-screen
			},
			Layout: LayoutConfig{
				Sizing: Sizing{Width: Fixed(100), Height: Fixed(40)},
			},
		})
		c.Close()
		c.Close()
	})
	box, _ := c.BoundingBox(HashString("toast"))
	if !approx(box.X, 200) || !approx(box.Y, 160) {
		t.Errorf("toast at (%v, %v), want (200, 160)", box.X, box.Y)
	}
}

func TestFloating_MatchWidthSizesAgainstReference(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 800, 600, func(c *Context) {
		c.Open(Declaration{ID: HashString("field"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(240), Height: Fixed(30)},
		}})
		c.Open(Declaration{
			ID: HashString("completions"),
			Floating: FloatingConfig{
				AttachTo:   AttachToParent,
				AttachAt:   AttachLeftBottom,
				MatchWidth: true,
			},
			Layout: LayoutConfig{
				Sizing: Sizing{Width: Grow(), Height: Fixed(120)},
			},
		})
		c.Close()
		c.Close()
	})
	box, _ := c.BoundingBox(HashString("completions"))
	if box.Width != 240 {
		t.Errorf("completions width = %v, want 240 (matched to the reference box)", box.Width)
	}
}

func TestFloating_AttachToElementByID(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 800, 600, func(c *Context) {
		c.Open(Declaration{Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(400), Height: Fixed(400)},
		}})
		c.Open(Declaration{ID: HashString("target"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(80), Height: Fixed(80)},
		}})
		c.Close()
		c.Open(Declaration{
			ID: HashString("badge"),
			Floating: FloatingConfig{
				AttachTo: AttachToElement,
				ParentID: HashString("target"),
				AttachAt: AttachRightTop,
				Anchor:   AttachCenterCenter,
			},
			Layout: LayoutConfig{
				Sizing: Sizing{Width: Fixed(20), Height: Fixed(20)},
			},
		})
		c.Close()
		c.Close()
	})
	box, _ := c.BoundingBox(HashString("badge"))
	// The anchor math lands the badge at y = -10; viewport clamping lifts it
	// back to 0.
	if !approx(box.X, 70) || !approx(box.Y, 0) {
		t.Errorf("badge at (%v, %v), want (70, 0)", box.X, box.Y)
	}
}

func TestFloating_ZIndexInheritedByDescendants(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 800, 600, func(c *Context) {
		c.Open(Declaration{Layout: LayoutConfig{
			Sizing: Sizing{Width: Grow(), Height: Grow()},
		}})
		c.Open(Declaration{
			ID:       HashString("modal"),
			Floating: FloatingConfig{AttachTo: AttachToRoot, ZIndex: 5},
			Layout: LayoutConfig{
				Sizing: Sizing{Width: Fixed(200), Height: Fixed(150)},
			},
		})
		c.Open(Declaration{ID: HashString("body"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Grow(), Height: Grow()},
		}})
		c.Open(Declaration{ID: HashString("deep"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(10), Height: Fixed(10)},
		}})
		c.Close()
		c.Close()
		c.Close()
		c.Close()
	})
	for _, id := range []string{"modal", "body", "deep"} {
		z, ok := c.ZIndex(HashString(id))
		if !ok {
			t.Fatalf("ZIndex(%q) not found", id)
		}
		if z != 5 {
			t.Errorf("ZIndex(%q) = %d, want 5", id, z)
		}
	}
}

func TestFloating_TextWrapsAgainstOverlayWidth(t *testing.T) {
	c := newTestContext()
	cmds := buildFrame(t, c, 800, 600, func(c *Context) {
		c.Open(Declaration{Layout: LayoutConfig{
			Sizing: Sizing{Width: Grow(), Height: Grow()},
		}})
		c.Open(Declaration{
			ID:       HashString("tooltip"),
			Floating: FloatingConfig{AttachTo: AttachToParent},
			Layout: LayoutConfig{
				Sizing:  Sizing{Width: Fixed(120), Height: Fit()},
				Padding: PaddingAll(10),
			},
		})
		c.Text("hello world", TextConfig{FontSize: 14})
		c.Close()
		c.Close()
	})
	if lines := textLines(cmds); len(lines) != 2 {
		t.Fatalf("tooltip lines = %q, want 2", lines)
	}
	box, _ := c.BoundingBox(HashString("tooltip"))
	if !approx(box.Height, 48) {
		t.Errorf("tooltip height = %v, want 48", box.Height)
	}
}
