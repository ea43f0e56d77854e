package layout

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// declareAppFrame builds a small application shell: a sidebar of rows, a
// scrollable content column with wrapped paragraphs, and a modal floating
// above everything.
func declareAppFrame(c *Context, rows int) error {
	if err := c.Open(Declaration{
		ID: HashString("app"),
		Layout: LayoutConfig{
			Sizing:   Sizing{Width: Grow(), Height: Grow()},
			ChildGap: 8,
			Padding:  PaddingAll(8),
		},
		BackgroundColor: Color{R: 30, G: 30, B: 30, A: 255},
	}); err != nil {
		return err
	}

	if err := c.Open(Declaration{
		ID: HashString("sidebar"),
		Layout: LayoutConfig{
			Sizing:    Sizing{Width: Fixed(180), Height: Grow()},
			Direction: TopToBottom,
			ChildGap:  4,
		},
		BackgroundColor: Color{R: 40, G: 40, B: 40, A: 255},
	}); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := c.Open(Declaration{
			ID: HashIndexed("nav", uint32(i)),
			Layout: LayoutConfig{
				Sizing:  Sizing{Width: Grow(), Height: Fixed(28)},
				Padding: PaddingSymmetric(8, 4),
			},
		}); err != nil {
			return err
		}
		if err := c.Text(fmt.Sprintf("item %d", i), TextConfig{FontSize: 13, Color: Color{A: 255}}); err != nil {
			return err
		}
		c.Close()
	}
	c.Close()

	if err := c.Open(Declaration{
		ID: HashString("content"),
		Layout: LayoutConfig{
			Sizing:    Sizing{Width: Grow(), Height: Grow()},
			Direction: TopToBottom,
			ChildGap:  12,
			Padding:   PaddingAll(16),
		},
		Scroll: ScrollConfig{Vertical: true},
	}); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if err := c.Text(
			"the quick brown fox jumps over the lazy dog and keeps on running",
			TextConfig{FontSize: 14, Color: Color{A: 255}},
		); err != nil {
			return err
		}
	}
	c.Close()

	if err := c.Open(Declaration{
		ID: HashString("modal"),
		Floating: FloatingConfig{
			AttachTo: AttachToRoot,
			AttachAt: AttachCenterCenter,
			Anchor:   AttachCenterCenter,
			ZIndex:   10,
		},
		Layout: LayoutConfig{
			Sizing:  Sizing{Width: Fixed(320), Height: Fit()},
			Padding: PaddingAll(16),
		},
		BackgroundColor: Color{R: 60, G: 60, B: 60, A: 255},
		Shadow:          ShadowConfig{Color: Color{A: 80}, Offset: Vector2{Y: 4}, Blur: 12},
	}); err != nil {
		return err
	}
	if err := c.Text("are you sure you want to quit", TextConfig{FontSize: 14, Color: Color{A: 255}}); err != nil {
		return err
	}
	c.Close()

	c.Close()
	return nil
}

func TestFrame_FullPipeline(t *testing.T) {
	c := newTestContext()
	var first []CommandKind
	for frame := 0; frame < 3; frame++ {
		c.BeginFrame(1024, 768)
		if err := declareAppFrame(c, 5); err != nil {
			t.Fatalf("frame %d: declare error = %v", frame, err)
		}
		cmds, err := c.EndFrame()
		if err != nil {
			t.Fatalf("frame %d: EndFrame() error = %v", frame, err)
		}
		if len(cmds) == 0 {
			t.Fatal("expected commands")
		}

		// Identical declarations must replay to the identical command stream.
		got := kinds(cmds)
		if frame == 0 {
			first = append([]CommandKind(nil), got...)
		} else if len(got) != len(first) {
			t.Fatalf("frame %d: %d commands, frame 0 had %d", frame, len(got), len(first))
		}

		// The modal paints last: z-index 10 beats the z-uniform flow.
		last := cmds[len(cmds)-1]
		if z, _ := c.ZIndex(HashString("modal")); z != 10 {
			t.Errorf("modal z = %d, want 10", z)
		}
		if last.ZIndex != 10 {
			t.Errorf("last command z = %d, want 10", last.ZIndex)
		}

		// Scissor brackets balance.
		depth := 0
		for _, cmd := range cmds {
			switch cmd.Kind {
			case CommandScissorStart:
				depth++
			case CommandScissorEnd:
				depth--
			}
			if depth < 0 {
				t.Fatal("scissor end before start")
			}
		}
		if depth != 0 {
			t.Errorf("unbalanced scissor commands: depth = %d", depth)
		}

		// No box leaks outside the viewport on the floating layer.
		modal, ok := c.BoundingBox(HashString("modal"))
		if !ok {
			t.Fatal("BoundingBox(modal) not found")
		}
		if modal.X < 0 || modal.Y < 0 || modal.Right() > 1024 || modal.Bottom() > 768 {
			t.Errorf("modal %+v escapes the viewport", modal)
		}
	}
}

func BenchmarkFrame(b *testing.B) {
	c := New(WithMeasurer(fixedMeasurer()))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.BeginFrame(1920, 1080)
		if err := declareAppFrame(c, 20); err != nil {
			b.Fatal(err)
		}
		if _, err := c.EndFrame(); err != nil {
			b.Fatal(err)
		}
	}
}
