package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"stickanim/pose"

	"golang.org/x/image/colornames"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func isDark(c color.RGBA) bool  { return c.R < 0x40 && c.G < 0x40 && c.B < 0x40 }
func isWhite(c color.RGBA) bool { return c == color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} }

func TestRenderCanvas(t *testing.T) {
	img, err := newTestRenderer(t).Render(pose.BasePose(), pose.StickFigure())
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 512, 512) {
		t.Fatalf("bounds: have %v", got)
	}
	if c := img.RGBAAt(0, 0); !isWhite(c) {
		t.Errorf("background: have %v", c)
	}
}

func TestRenderStrokesAndMarkers(t *testing.T) {
	img, err := newTestRenderer(t).Render(pose.BasePose(), pose.StickFigure())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y int
		dark bool
	}{
		{"neck-hip segment", 256, 190, true},
		{"head ring", 271, 90, true},
		{"head ring hollow", 263, 88, false},
		{"hip ring", 262, 250, true},
		{"far from figure", 450, 60, false},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if tt.dark && !isDark(c) {
			t.Errorf("%s (%d,%d): have %v, want dark", tt.name, tt.x, tt.y, c)
		}
		if !tt.dark && !isWhite(c) {
			t.Errorf("%s (%d,%d): have %v, want white", tt.name, tt.x, tt.y, c)
		}
	}
}

func TestRenderSkipsMissingEndpoints(t *testing.T) {
	p := pose.BasePose()
	delete(p, pose.Hip)
	img, err := newTestRenderer(t).Render(p, pose.StickFigure())
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(256, 190); !isWhite(c) {
		t.Errorf("neck-hip segment drawn without hip: %v", c)
	}
	if c := img.RGBAAt(256, 250); !isWhite(c) {
		t.Errorf("hip marker drawn without hip: %v", c)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t)
	p := pose.DerivePose(pose.BasePose(), 15)
	a, err := r.Render(p, pose.StickFigure())
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(p, pose.StickFigure())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same pose differ")
	}
}

func TestNewRendererRejectsBadCanvas(t *testing.T) {
	s := DefaultStyle()
	s.Width = 0
	if _, err := NewRenderer(s); err == nil {
		t.Error("expected error for zero width")
	}
	s = DefaultStyle()
	s.Stroke = nil
	if _, err := NewRenderer(s); err == nil {
		t.Error("expected error for missing stroke colour")
	}
}

func TestPalette(t *testing.T) {
	s := DefaultStyle()
	s.Stroke = colornames.Red
	p := s.Palette()
	if len(p) != 256 {
		t.Fatalf("palette size %d", len(p))
	}
	if p[0] != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("first entry %v, want background", p[0])
	}
	if p[255] != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("last entry %v, want stroke", p[255])
	}
}
