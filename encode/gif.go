package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"
)

var (
	// ErrNoFrames 没有可编码的帧
	ErrNoFrames = errors.New("没有可编码的帧")
	// ErrFrameSize 帧尺寸不一致
	ErrFrameSize = errors.New("帧尺寸不一致")
)

// GIF 将帧序列编码为无限循环的 GIF 动画
type GIF struct {
	Palette color.Palette // 量化用调色板
	Delay   time.Duration // 每帧显示时长
}

// NewGIF 创建 GIF 编码器
func NewGIF(palette color.Palette, delay time.Duration) *GIF {
	return &GIF{Palette: palette, Delay: delay}
}

// DelayCentiseconds 每帧时长，单位为百分之一秒，最小为 1
func (g *GIF) DelayCentiseconds() int {
	cs := int((g.Delay + 5*time.Millisecond) / (10 * time.Millisecond))
	return max(cs, 1)
}

// Encode 将 frames 编码写入 w，所有帧必须尺寸一致
func (g *GIF) Encode(w io.Writer, frames []*image.RGBA) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(g.Palette) == 0 {
		return fmt.Errorf("调色板为空")
	}

	size := frames[0].Bounds().Size()
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
		Config: image.Config{
			ColorModel: g.Palette,
			Width:      size.X,
			Height:     size.Y,
		},
	}
	delay := g.DelayCentiseconds()
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Size() != size {
			return fmt.Errorf("%w: 第 %d 帧为 %v，期望 %v", ErrFrameSize, i, b.Size(), size)
		}
		pm := image.NewPaletted(image.Rectangle{Max: size}, g.Palette)
		draw.Draw(pm, pm.Bounds(), frame, b.Min, draw.Src)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("编码 GIF 失败：%w", err)
	}
	return nil
}

// EncodeFile 将帧序列写入 path。
// 先写入同目录下的临时文件，成功后再替换 path；失败时保留原有文件。
func (g *GIF) EncodeFile(path string, frames []*image.RGBA) (err error) {
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("创建输出文件失败：%w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err := g.Encode(file, frames); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("关闭输出文件失败：%w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("替换输出文件失败：%w", err)
	}
	return nil
}
