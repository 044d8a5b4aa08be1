package render

import (
	"fmt"
	"image"
	"math"

	"stickanim/pose"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// circleSegments 圆环的折线段数
const circleSegments = 64

// Renderer 将姿态栅格化为单帧图像
type Renderer struct {
	style Style
}

// NewRenderer 创建渲染器
func NewRenderer(style Style) (*Renderer, error) {
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("无效的画布尺寸 %dx%d", style.Width, style.Height)
	}
	if style.Background == nil || style.Stroke == nil {
		return nil, fmt.Errorf("未设置背景色或线条色")
	}
	return &Renderer{style: style}, nil
}

// Style 返回渲染样式
func (r *Renderer) Style() Style { return r.style }

// Render 先画两端关节都存在的骨架线段，再为每个关节画空心圆环。
// 缺失端点的线段直接跳过。
func (r *Renderer) Render(p pose.Pose, topo pose.Topology) (*image.RGBA, error) {
	s := r.style
	bounds := image.Rect(0, 0, s.Width, s.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(s.Background), image.Point{}, draw.Src)

	ink := image.NewUniform(s.Stroke)
	vr := vector.NewRasterizer(s.Width, s.Height)
	vr.DrawOp = draw.Over

	for _, e := range topo {
		a, okA := p[e.A]
		b, okB := p[e.B]
		if !okA || !okB {
			continue
		}
		if !segment(vr, a, b, s.LineWidth) {
			continue
		}
		vr.Draw(img, bounds, ink, image.Point{})
		vr.Reset(s.Width, s.Height)
	}

	for _, j := range p.Joints() {
		radius := s.MarkerRadius
		if j == pose.Head {
			radius = s.HeadRadius
		}
		ring(vr, p[j], radius, s.MarkerWidth)
		vr.Draw(img, bounds, ink, image.Point{})
		vr.Reset(s.Width, s.Height)
	}
	return img, nil
}

// segment 以平头端点的矩形路径表示宽度为 width 的线段；长度为零时返回 false
func segment(vr *vector.Rasterizer, a, b pose.Point, width float64) bool {
	d := r2.Sub(b, a)
	if r2.Norm(d) == 0 {
		return false
	}
	n := r2.Scale(width/2, r2.Unit(pose.Point{X: -d.Y, Y: d.X}))
	moveTo(vr, r2.Add(a, n))
	lineTo(vr, r2.Add(b, n))
	lineTo(vr, r2.Sub(b, n))
	lineTo(vr, r2.Sub(a, n))
	vr.ClosePath()
	return true
}

// ring 外半径为 radius、线宽为 width 的圆环。
// 内圆反向绕行，叠加后内部覆盖率为零。
func ring(vr *vector.Rasterizer, c pose.Point, radius, width float64) {
	circle(vr, c, radius, 1)
	if inner := radius - width; inner > 0 {
		circle(vr, c, inner, -1)
	}
}

func circle(vr *vector.Rasterizer, c pose.Point, radius, dir float64) {
	for i := 0; i <= circleSegments; i++ {
		a := dir * 2 * math.Pi * float64(i) / circleSegments
		p := pose.Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
		if i == 0 {
			moveTo(vr, p)
		} else {
			lineTo(vr, p)
		}
	}
	vr.ClosePath()
}

func moveTo(vr *vector.Rasterizer, p pose.Point) { vr.MoveTo(float32(p.X), float32(p.Y)) }

func lineTo(vr *vector.Rasterizer, p pose.Point) { vr.LineTo(float32(p.X), float32(p.Y)) }
