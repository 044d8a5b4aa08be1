package animation

import (
	"fmt"
	"iter"

	"stickanim/pose"
)

// Animation 定义了一个可循环播放的姿态序列
type Animation interface {
	// Name 返回动画的名称
	Name() string
	// Description 返回动画的描述
	Description() string
	// Frames 返回一个周期的帧数
	Frames() int
	// Poses 按帧顺序逐个生成姿态，每个姿态只在对应帧渲染期间存活
	Poses() iter.Seq[pose.Pose]
}

// --- Pendulum ---

// Pendulum 肢体绕支点做钟摆式往返摆动
type Pendulum struct {
	name   string
	base   pose.Pose
	limb   pose.Limb
	sweep  Sweep
	angles []float64
}

// NewPendulum 创建钟摆动画，摆动参数无效时返回错误
func NewPendulum(name string, base pose.Pose, limb pose.Limb, sweep Sweep) (*Pendulum, error) {
	angles, err := sweep.Angles()
	if err != nil {
		return nil, fmt.Errorf("动画 %s：%w", name, err)
	}
	return &Pendulum{name: name, base: base.Clone(), limb: limb, sweep: sweep, angles: angles}, nil
}

func (p *Pendulum) Name() string { return p.name }

func (p *Pendulum) Description() string {
	return fmt.Sprintf("%s绕 %s 在 %v° 到 %v° 之间摆动，步长 %v°",
		p.limb, p.limb.Pivot, p.sweep.Lower, p.sweep.Upper, p.sweep.Step)
}

func (p *Pendulum) Frames() int { return len(p.angles) }

// Angles 返回角度序列的副本
func (p *Pendulum) Angles() []float64 { return append([]float64(nil), p.angles...) }

func (p *Pendulum) Poses() iter.Seq[pose.Pose] {
	return func(yield func(pose.Pose) bool) {
		for _, a := range p.angles {
			if !yield(p.limb.Derive(p.base, a)) {
				return
			}
		}
	}
}

// --- Reach ---

// Reach 在静止姿态与目标姿态之间线性插值往返
type Reach struct {
	name   string
	from   pose.Pose
	to     pose.Pose
	steps  int
	blends []float64
}

// NewReach 创建插值动画，两端姿态的关节集合必须一致
func NewReach(name string, from, to pose.Pose, steps int) (*Reach, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("动画 %s：插值步数必须为正数，当前为 %d", name, steps)
	}
	if !from.SameJoints(to) {
		return nil, fmt.Errorf("动画 %s：%w", name, pose.ErrJointMismatch)
	}
	idx := pingPong(steps)
	blends := make([]float64, len(idx))
	for k, i := range idx {
		blends[k] = float64(i) / float64(steps)
	}
	return &Reach{name: name, from: from.Clone(), to: to.Clone(), steps: steps, blends: blends}, nil
}

func (r *Reach) Name() string { return r.name }

func (r *Reach) Description() string {
	return fmt.Sprintf("从静止姿态插值到目标姿态再返回，共 %d 步", r.steps)
}

func (r *Reach) Frames() int { return len(r.blends) }

func (r *Reach) Poses() iter.Seq[pose.Pose] {
	return func(yield func(pose.Pose) bool) {
		for _, t := range r.blends {
			p, err := pose.Interpolate(r.from, r.to, t)
			if err != nil {
				// NewReach 已校验关节集合
				panic(err)
			}
			if !yield(p) {
				return
			}
		}
	}
}

// ArmsRaised 双臂向外抬起 degrees 度的目标姿态
func ArmsRaised(base pose.Pose, degrees float64) pose.Pose {
	return pose.RightArm.Derive(pose.LeftArm.Derive(base, degrees), -degrees)
}
