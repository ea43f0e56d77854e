package layout

import "testing"

// threeFixedChildren declares a 300x100 row with three 50x50 children under
// the given distribution mode.
func threeFixedChildren(justify Justify, gap uint16) func(c *Context) {
	return func(c *Context) {
		c.Open(Declaration{
			ID: HashString("row"),
			Layout: LayoutConfig{
				Sizing:   Sizing{Width: Fixed(300), Height: Fixed(100)},
				Justify:  justify,
				ChildGap: gap,
			},
		})
		for _, name := range []string{"a", "b", "c"} {
			c.Open(Declaration{ID: HashString(name), Layout: LayoutConfig{
				Sizing: Sizing{Width: Fixed(50), Height: Fixed(50)},
			}})
			c.Close()
		}
		c.Close()
	}
}

func TestPosition_Distribution(t *testing.T) {
	tests := map[string]struct {
		justify Justify
		gap     uint16
		wantX   [3]float32
	}{
		"start packs children at the leading edge": {
			justify: JustifyStart,
			wantX:   [3]float32{0, 50, 100},
		},
		"start honors the declared gap": {
			justify: JustifyStart,
			gap:     10,
			wantX:   [3]float32{0, 60, 120},
		},
		"end packs children at the trailing edge": {
			justify: JustifyEnd,
			wantX:   [3]float32{150, 200, 250},
		},
		"center splits the leftover space": {
			justify: JustifyCenter,
			wantX:   [3]float32{75, 125, 175},
		},
		"space between spreads children to both edges": {
			justify: JustifySpaceBetween,
			wantX:   [3]float32{0, 125, 250},
		},
		"space around gives each child a symmetric margin": {
			justify: JustifySpaceAround,
			wantX:   [3]float32{25, 125, 225},
		},
		"space evenly equalizes all gaps including the edges": {
			justify: JustifySpaceEvenly,
			wantX:   [3]float32{37.5, 125, 212.5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestContext()
			buildFrame(t, c, 300, 100, threeFixedChildren(tt.justify, tt.gap))
			for i, id := range []string{"a", "b", "c"} {
				box, ok := c.BoundingBox(HashString(id))
				if !ok {
					t.Fatalf("BoundingBox(%q) not found", id)
				}
				if !approx(box.X, tt.wantX[i]) {
					t.Errorf("%q x = %v, want %v", id, box.X, tt.wantX[i])
				}
			}
		})
	}
}

func TestPosition_SpaceBetweenSingleChildFallsBackToStart(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 300, 100, func(c *Context) {
		c.Open(Declaration{
			Layout: LayoutConfig{
				Sizing:  Sizing{Width: Fixed(300), Height: Fixed(100)},
				Justify: JustifySpaceBetween,
			},
		})
		c.Open(Declaration{ID: HashString("only"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(50), Height: Fixed(50)},
		}})
		c.Close()
		c.Close()
	})
	box, _ := c.BoundingBox(HashString("only"))
	if box.X != 0 {
		t.Errorf("single child x = %v, want 0", box.X)
	}
}

func TestPosition_CrossAxisAlign(t *testing.T) {
	tests := map[string]struct {
		align Align
		wantY float32
	}{
		"start":  {align: AlignStart, wantY: 0},
		"center": {align: AlignCenter, wantY: 25},
		"end":    {align: AlignEnd, wantY: 50},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestContext()
			buildFrame(t, c, 300, 100, func(c *Context) {
				c.Open(Declaration{
					Layout: LayoutConfig{
						Sizing: Sizing{Width: Fixed(300), Height: Fixed(100)},
						Align:  tt.align,
					},
				})
				c.Open(Declaration{ID: HashString("child"), Layout: LayoutConfig{
					Sizing: Sizing{Width: Fixed(50), Height: Fixed(50)},
				}})
				c.Close()
				c.Close()
			})
			box, _ := c.BoundingBox(HashString("child"))
			if !approx(box.Y, tt.wantY) {
				t.Errorf("child y = %v, want %v", box.Y, tt.wantY)
			}
		})
	}
}

func TestPosition_ColumnStacksVertically(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 200, 300, func(c *Context) {
		c.Open(Declaration{
			Layout: LayoutConfig{
				Sizing:    Sizing{Width: Fixed(200), Height: Fixed(300)},
				Direction: TopToBottom,
				ChildGap:  5,
				Padding:   PaddingAll(10),
			},
		})
		for _, name := range []string{"top", "mid", "bot"} {
			c.Open(Declaration{ID: HashString(name), Layout: LayoutConfig{
				Sizing: Sizing{Width: Grow(), Height: Fixed(40)},
			}})
			c.Close()
		}
		c.Close()
	})
	wantY := map[string]float32{"top": 10, "mid": 55, "bot": 100}
	for id, want := range wantY {
		box, ok := c.BoundingBox(HashString(id))
		if !ok {
			t.Fatalf("BoundingBox(%q) not found", id)
		}
		if !approx(box.Y, want) {
			t.Errorf("%q y = %v, want %v", id, box.Y, want)
		}
		if !approx(box.Width, 180) {
			t.Errorf("%q width = %v, want 180 (content box minus padding)", id, box.Width)
		}
	}
}

func TestPosition_ScrollOffsetShiftsChildren(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 200, 100, func(c *Context) {
		c.Open(Declaration{
			Layout: LayoutConfig{
				Sizing:    Sizing{Width: Fixed(200), Height: Fixed(100)},
				Direction: TopToBottom,
			},
			Scroll: ScrollConfig{Vertical: true, Offset: Vector2{Y: 30}},
		})
		c.Open(Declaration{ID: HashString("scrolled"), Layout: LayoutConfig{
			Sizing: Sizing{Width: Grow(), Height: Fixed(400)},
		}})
		c.Close()
		c.Close()
	})
	box, _ := c.BoundingBox(HashString("scrolled"))
	if !approx(box.Y, -30) {
		t.Errorf("scrolled y = %v, want -30", box.Y)
	}
}

func TestPosition_ContentBoxInsetsPadding(t *testing.T) {
	c := newTestContext()
	buildFrame(t, c, 300, 100, func(c *Context) {
		c.Open(Declaration{
			ID: HashString("padded"),
			Layout: LayoutConfig{
				Sizing:  Sizing{Width: Fixed(300), Height: Fixed(100)},
				Padding: Padding{Left: 5, Right: 15, Top: 10, Bottom: 20},
			},
		})
		c.Close()
	})
	content, ok := c.ContentBox(HashString("padded"))
	if !ok {
		t.Fatal("ContentBox(padded) not found")
	}
	want := Rect{X: 5, Y: 10, Width: 280, Height: 70}
	if content != want {
		t.Errorf("content box = %+v, want %+v", content, want)
	}
}
