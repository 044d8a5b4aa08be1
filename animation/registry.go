package animation

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"

	"stickanim/pose"
)

// ErrUnknownAnimation 请求的动画未注册
var ErrUnknownAnimation = errors.New("动画未注册")

const (
	// ShoulderPendulum 左臂钟摆，默认动画
	ShoulderPendulum = "shoulder_pendulum"
	// ShoulderPendulumRight 右臂钟摆
	ShoulderPendulumRight = "shoulder_pendulum_r"
	// ArmReach 双臂抬起再放下
	ArmReach = "arm_reach"
)

// reachDegrees 与 reachSteps 描述 arm_reach 的目标姿态与插值步数
const (
	reachDegrees = 80
	reachSteps   = 10
)

// Registry 动画注册表
type Registry struct {
	animations map[string]Animation
}

// NewRegistry 创建空的注册表
func NewRegistry() *Registry {
	return &Registry{animations: make(map[string]Animation)}
}

// Register 注册一个动画，同名动画会被覆盖
func (r *Registry) Register(anim Animation) {
	if anim == nil {
		log.Printf("⚠️ 尝试注册一个空动画")
		return
	}
	name := anim.Name()
	if _, exists := r.animations[name]; exists {
		log.Printf("⚠️ 动画 %s 已注册，将被覆盖", name)
	}
	r.animations[name] = anim
}

// Get 获取指定名称的动画
func (r *Registry) Get(name string) (Animation, error) {
	anim, ok := r.animations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}
	return anim, nil
}

// Names 按名称排序返回所有已注册的动画
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.animations))
}

// Builtin 创建包含内置动画的注册表
func Builtin(base pose.Pose, sweep Sweep) (*Registry, error) {
	r := NewRegistry()

	left, err := NewPendulum(ShoulderPendulum, base, pose.LeftArm, sweep)
	if err != nil {
		return nil, err
	}
	r.Register(left)

	right, err := NewPendulum(ShoulderPendulumRight, base, pose.RightArm, Sweep{
		Lower: -sweep.Upper,
		Upper: -sweep.Lower,
		Step:  sweep.Step,
	})
	if err != nil {
		return nil, err
	}
	r.Register(right)

	reach, err := NewReach(ArmReach, base, ArmsRaised(base, reachDegrees), reachSteps)
	if err != nil {
		return nil, err
	}
	r.Register(reach)

	return r, nil
}
