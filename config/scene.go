package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"stickanim/animation"
	"stickanim/pose"
	"stickanim/render"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultFrameDelay 每帧显示时长
const DefaultFrameDelay = 60 * time.Millisecond

// Scene 生成动画所需的全部不可变输入
type Scene struct {
	Style    render.Style
	Delay    time.Duration
	Base     pose.Pose
	Topology pose.Topology
	Sweep    animation.Sweep
}

// DefaultScene 内置场景：512×512 白底黑线火柴人，左臂 -25°..25° 摆动
func DefaultScene() *Scene {
	return &Scene{
		Style:    render.DefaultStyle(),
		Delay:    DefaultFrameDelay,
		Base:     pose.BasePose(),
		Topology: pose.StickFigure(),
		Sweep:    animation.DefaultSweep(),
	}
}

// sceneFile 场景文件的 YAML 结构，未填写的字段使用内置默认值
type sceneFile struct {
	Canvas struct {
		Width  int `yaml:"width,omitempty"`
		Height int `yaml:"height,omitempty"`
	} `yaml:"canvas"`
	Style struct {
		Background   string  `yaml:"background,omitempty"`
		Stroke       string  `yaml:"stroke,omitempty"`
		LineWidth    float64 `yaml:"line_width,omitempty"`
		MarkerWidth  float64 `yaml:"marker_width,omitempty"`
		MarkerRadius float64 `yaml:"marker_radius,omitempty"`
		HeadRadius   float64 `yaml:"head_radius,omitempty"`
	} `yaml:"style"`
	FrameDelayMs int                  `yaml:"frame_delay_ms,omitempty"`
	Joints       map[string][]float64 `yaml:"joints,omitempty"`
	Edges        [][]string           `yaml:"edges,omitempty"`
	Sweep        *animation.Sweep     `yaml:"sweep,omitempty"`
}

// LoadScene 从 YAML 文件加载场景
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取场景文件失败：%w", err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("解析场景文件 %s 失败：%w", path, err)
	}
	return scene, nil
}

// ParseScene 解析 YAML 场景，并用默认值补齐缺省字段
func ParseScene(data []byte) (*Scene, error) {
	// 摆动参数按字段合并：未给出的字段沿用默认值
	def := animation.DefaultSweep()
	f := sceneFile{Sweep: &def}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	scene := DefaultScene()
	s := &scene.Style
	if f.Canvas.Width != 0 {
		s.Width = f.Canvas.Width
	}
	if f.Canvas.Height != 0 {
		s.Height = f.Canvas.Height
	}
	if f.Style.Background != "" {
		c, err := colorful.Hex(f.Style.Background)
		if err != nil {
			return nil, fmt.Errorf("无效的背景色 %q：%w", f.Style.Background, err)
		}
		s.Background = c
	}
	if f.Style.Stroke != "" {
		c, err := colorful.Hex(f.Style.Stroke)
		if err != nil {
			return nil, fmt.Errorf("无效的线条色 %q：%w", f.Style.Stroke, err)
		}
		s.Stroke = c
	}
	setPositive(&s.LineWidth, f.Style.LineWidth)
	setPositive(&s.MarkerWidth, f.Style.MarkerWidth)
	setPositive(&s.MarkerRadius, f.Style.MarkerRadius)
	setPositive(&s.HeadRadius, f.Style.HeadRadius)

	if f.FrameDelayMs < 0 {
		return nil, fmt.Errorf("无效的帧时长 %dms", f.FrameDelayMs)
	}
	if f.FrameDelayMs > 0 {
		scene.Delay = time.Duration(f.FrameDelayMs) * time.Millisecond
	}

	if len(f.Joints) > 0 {
		base := make(pose.Pose, len(f.Joints))
		for name, xy := range f.Joints {
			if len(xy) != 2 {
				return nil, fmt.Errorf("关节 %s 的坐标必须为 [x, y]", name)
			}
			base[pose.Joint(name)] = pose.Pt(xy[0], xy[1])
		}
		scene.Base = base
	}

	if len(f.Edges) > 0 {
		topo := make(pose.Topology, 0, len(f.Edges))
		for i, e := range f.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("第 %d 条连线必须包含两个关节", i+1)
			}
			topo = append(topo, pose.Edge{A: pose.Joint(e[0]), B: pose.Joint(e[1])})
		}
		scene.Topology = topo
	}

	if f.Sweep != nil {
		if err := f.Sweep.Validate(); err != nil {
			return nil, err
		}
		scene.Sweep = *f.Sweep
	}

	for _, l := range []pose.Limb{pose.LeftArm, pose.RightArm} {
		if _, ok := scene.Base[l.Pivot]; !ok {
			log.Printf("⚠️ 场景缺少关节 %s，%s摆动动画将保持静止", l.Pivot, l)
		}
	}

	for _, e := range scene.Topology {
		for _, j := range []pose.Joint{e.A, e.B} {
			if _, ok := scene.Base[j]; !ok {
				log.Printf("⚠️ 连线 %s-%s 引用了不存在的关节 %s，绘制时将跳过", e.A, e.B, j)
			}
		}
	}

	return scene, nil
}

// SaveScene 将场景写成 YAML 文件
func SaveScene(scene *Scene, path string) error {
	var f sceneFile
	f.Canvas.Width = scene.Style.Width
	f.Canvas.Height = scene.Style.Height
	bg, _ := colorful.MakeColor(scene.Style.Background)
	fg, _ := colorful.MakeColor(scene.Style.Stroke)
	f.Style.Background = bg.Hex()
	f.Style.Stroke = fg.Hex()
	f.Style.LineWidth = scene.Style.LineWidth
	f.Style.MarkerWidth = scene.Style.MarkerWidth
	f.Style.MarkerRadius = scene.Style.MarkerRadius
	f.Style.HeadRadius = scene.Style.HeadRadius
	f.FrameDelayMs = int(scene.Delay / time.Millisecond)
	f.Joints = make(map[string][]float64, len(scene.Base))
	for j, p := range scene.Base {
		f.Joints[string(j)] = []float64{p.X, p.Y}
	}
	for _, e := range scene.Topology {
		f.Edges = append(f.Edges, []string{string(e.A), string(e.B)})
	}
	sweep := scene.Sweep
	f.Sweep = &sweep

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("序列化场景失败：%w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("保存场景文件失败：%w", err)
	}
	return nil
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
