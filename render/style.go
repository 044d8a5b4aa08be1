package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Style 火柴人绘制样式
type Style struct {
	Width, Height int         // 画布尺寸
	Background    color.Color // 背景色
	Stroke        color.Color // 线条与关节标记颜色
	LineWidth     float64     // 骨架线宽
	MarkerWidth   float64     // 关节圆环线宽
	MarkerRadius  float64     // 普通关节圆环半径
	HeadRadius    float64     // 头部圆环半径
}

// DefaultStyle 512×512 白底黑线
func DefaultStyle() Style {
	return Style{
		Width:        512,
		Height:       512,
		Background:   colornames.White,
		Stroke:       colornames.Black,
		LineWidth:    8,
		MarkerWidth:  6,
		MarkerRadius: 8,
		HeadRadius:   18,
	}
}

// Palette 返回从背景色到线条色的渐变调色板，抗锯齿边缘会量化到其中最接近的颜色
func (s Style) Palette() color.Palette {
	bg, _ := colorful.MakeColor(s.Background)
	fg, _ := colorful.MakeColor(s.Stroke)
	const n = 256
	p := make(color.Palette, n)
	for i := range n {
		c := bg.BlendRgb(fg, float64(i)/(n-1)).Clamped()
		r, g, b := c.RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}
