package pose

import (
	"math"

	"stickanim/define"

	"gonum.org/v1/gonum/spatial/r2"
)

// Limb 描述一个可绕支点刚性旋转的关节子树
type Limb struct {
	Name    string      // 肢体名称
	Side    define.Side // 左右侧
	Pivot   Joint       // 旋转支点
	Members []Joint     // 跟随旋转的关节
}

var (
	// LeftArm 左臂：绕左肩旋转肘部和手腕
	LeftArm = Limb{Name: "臂", Side: define.SIDE_LEFT, Pivot: ShoulderL, Members: []Joint{ElbowL, WristL}}
	// RightArm 右臂：绕右肩旋转肘部和手腕
	RightArm = Limb{Name: "臂", Side: define.SIDE_RIGHT, Pivot: ShoulderR, Members: []Joint{ElbowR, WristR}}
)

// Rotate 将点 p 绕 pivot 旋转 rad 弧度
func Rotate(p, pivot Point, rad float64) Point {
	sin, cos := math.Sincos(rad)
	d := r2.Sub(p, pivot)
	return r2.Add(pivot, Point{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	})
}

// Derive 返回在 base 基础上将肢体旋转 degrees 度后的新姿态。
// 每个成员关节都以自身在 base 中相对支点的偏移旋转，不做链式叠加。
// 支点或成员关节在 base 中缺失时，对应关节保持不变。
func (l Limb) Derive(base Pose, degrees float64) Pose {
	out := base.Clone()
	if degrees == 0 {
		return out
	}
	pivot, ok := base[l.Pivot]
	if !ok {
		return out
	}
	rad := degrees * math.Pi / 180
	for _, j := range l.Members {
		if p, ok := base[j]; ok {
			out[j] = Rotate(p, pivot, rad)
		}
	}
	return out
}

// String 例如 "左臂"
func (l Limb) String() string { return l.Side.String() + l.Name }

// DerivePose 将左臂绕左肩旋转 degrees 度
func DerivePose(base Pose, degrees float64) Pose {
	return LeftArm.Derive(base, degrees)
}
