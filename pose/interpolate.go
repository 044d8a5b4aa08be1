package pose

import (
	"errors"
	"fmt"
)

// ErrJointMismatch 两个姿态的关节集合不一致
var ErrJointMismatch = errors.New("关节集合不一致")

// t 为 0 或 1 时结果精确等于端点
func lerp(a, b, t float64) float64 { return (1-t)*a + t*b }

// Interpolate 在 p0 与 p1 之间按 t 做逐关节线性插值。
// t 不做截断，超出 [0,1] 即为外推。p0 与 p1 的关节集合必须一致。
func Interpolate(p0, p1 Pose, t float64) (Pose, error) {
	if len(p0) != len(p1) {
		return nil, fmt.Errorf("%w: %d 个关节 vs %d 个关节", ErrJointMismatch, len(p0), len(p1))
	}
	out := make(Pose, len(p0))
	for j, a := range p0 {
		b, ok := p1[j]
		if !ok {
			return nil, fmt.Errorf("%w: 目标姿态缺少关节 %s", ErrJointMismatch, j)
		}
		out[j] = Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
	}
	return out, nil
}
