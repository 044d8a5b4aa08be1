package animation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSweep 摆动区间或步长无效
var ErrInvalidSweep = errors.New("无效的摆动参数")

// MaxFrames 单个摆动周期允许的最大帧数
const MaxFrames = 10000

// Sweep 一个往返摆动周期：从 Lower 按 Step 升到 Upper，再降回 Lower 之前一步。
// 峰值只出现一次，谷值也只出现一次，循环播放时首尾衔接。
type Sweep struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Step  float64 `json:"step" yaml:"step"`
}

// DefaultSweep -25° 到 25°，步长 5°
func DefaultSweep() Sweep { return Sweep{Lower: -25, Upper: 25, Step: 5} }

// Validate 检查区间与步长
func (s Sweep) Validate() error {
	if math.IsNaN(s.Lower) || math.IsNaN(s.Upper) || math.IsInf(s.Lower, 0) || math.IsInf(s.Upper, 0) {
		return fmt.Errorf("%w: 区间 [%v, %v]", ErrInvalidSweep, s.Lower, s.Upper)
	}
	if !(s.Step > 0) || math.IsInf(s.Step, 0) {
		return fmt.Errorf("%w: 步长 %v", ErrInvalidSweep, s.Step)
	}
	if s.Upper < s.Lower {
		return fmt.Errorf("%w: 上界 %v 小于下界 %v", ErrInvalidSweep, s.Upper, s.Lower)
	}
	// 2*steps 帧，steps 需在整数转换前限定范围
	if span := (s.Upper - s.Lower) / s.Step; math.IsNaN(span) || math.IsInf(span, 0) || span > MaxFrames/2 {
		return fmt.Errorf("%w: [%v, %v] 步长 %v 超过 %d 帧上限", ErrInvalidSweep, s.Lower, s.Upper, s.Step, MaxFrames)
	}
	return nil
}

// steps 区间内的步数，(Upper-Lower)/Step 向下取整
func (s Sweep) steps() int {
	return int(math.Floor((s.Upper-s.Lower)/s.Step + 1e-9))
}

// Angles 生成一个周期的角度序列，长度为 2*steps；
// -25..25 步长 5 得到 20 个值。Lower 等于 Upper 时只含一个值。
func (s Sweep) Angles() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	idx := pingPong(s.steps())
	angles := make([]float64, len(idx))
	for k, i := range idx {
		angles[k] = s.Lower + float64(i)*s.Step
	}
	return angles, nil
}

// pingPong 生成 0..n 再回到 1 的下标序列，与 Angles 的往返规则一致
func pingPong(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	idx := make([]int, 0, 2*n)
	for i := 0; i <= n; i++ {
		idx = append(idx, i)
	}
	for i := n - 1; i >= 1; i-- {
		idx = append(idx, i)
	}
	return idx
}
