package animation

import (
	"fmt"
	"image"
	"io"
	"log"

	"stickanim/pose"

	"github.com/cheggaaa/pb/v3"
)

// progressTemplate 渲染进度条模板
const progressTemplate = `{{ string . "prefix" }} {{counters . }} {{bar . }} {{percent . }} {{etime . "%s elapsed"}}`

// FrameRenderer 将一个姿态绘制成一帧图像
type FrameRenderer interface {
	Render(p pose.Pose, topo pose.Topology) (*image.RGBA, error)
}

// Encoder 将帧序列编码为动画文件
type Encoder interface {
	Encode(w io.Writer, frames []*image.RGBA) error
	EncodeFile(path string, frames []*image.RGBA) error
}

// Driver 串联姿态生成、逐帧渲染与动画编码
type Driver struct {
	Renderer FrameRenderer
	Encoder  Encoder
	Progress bool // 渲染时在标准错误输出显示进度条
}

// NewDriver 创建驱动器
func NewDriver(renderer FrameRenderer, encoder Encoder) *Driver {
	return &Driver{Renderer: renderer, Encoder: encoder}
}

// Render 依次渲染动画的每个姿态，返回全部帧。任一帧失败即返回错误。
func (d *Driver) Render(anim Animation, topo pose.Topology) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, anim.Frames())

	var bar *pb.ProgressBar
	if d.Progress {
		bar = pb.ProgressBarTemplate(progressTemplate).Start(anim.Frames())
		bar.Set("prefix", anim.Name())
		defer bar.Finish()
	}

	for p := range anim.Poses() {
		img, err := d.Renderer.Render(p, topo)
		if err != nil {
			return nil, fmt.Errorf("渲染动画 %s 第 %d 帧失败：%w", anim.Name(), len(frames)+1, err)
		}
		frames = append(frames, img)
		if bar != nil {
			bar.Increment()
		}
	}
	return frames, nil
}

// Run 渲染动画并写入 path
func (d *Driver) Run(anim Animation, topo pose.Topology, path string) error {
	frames, err := d.Render(anim, topo)
	if err != nil {
		return err
	}
	log.Printf("🎞️ 动画 %s 共渲染 %d 帧，正在写入 %s", anim.Name(), len(frames), path)
	if err := d.Encoder.EncodeFile(path, frames); err != nil {
		return fmt.Errorf("写入动画 %s 失败：%w", anim.Name(), err)
	}
	return nil
}

// Write 渲染动画并编码写入 w
func (d *Driver) Write(w io.Writer, anim Animation, topo pose.Topology) error {
	frames, err := d.Render(anim, topo)
	if err != nil {
		return err
	}
	if err := d.Encoder.Encode(w, frames); err != nil {
		return fmt.Errorf("编码动画 %s 失败：%w", anim.Name(), err)
	}
	return nil
}
