package pose

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point 图像坐标系中的二维点（原点在左上角，x 向右，y 向下）
type Point = r2.Vec

// Pt 构造一个 Point
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Joint 关节名称
type Joint string

const (
	Head      Joint = "head"
	Neck      Joint = "neck"
	ShoulderL Joint = "shoulder_l"
	ElbowL    Joint = "elbow_l"
	WristL    Joint = "wrist_l"
	ShoulderR Joint = "shoulder_r"
	ElbowR    Joint = "elbow_r"
	WristR    Joint = "wrist_r"
	Hip       Joint = "hip"
	KneeL     Joint = "knee_l"
	AnkleL    Joint = "ankle_l"
	KneeR     Joint = "knee_r"
	AnkleR    Joint = "ankle_r"
)

// Pose 某一时刻所有关节的位置
type Pose map[Joint]Point

// Clone 返回姿态的独立副本
func (p Pose) Clone() Pose { return maps.Clone(p) }

// Joints 按名称排序返回关节列表，保证遍历顺序稳定
func (p Pose) Joints() []Joint {
	return slices.Sorted(maps.Keys(p))
}

// SameJoints 判断两个姿态是否拥有完全相同的关节集合
func (p Pose) SameJoints(other Pose) bool {
	if len(p) != len(other) {
		return false
	}
	for j := range p {
		if _, ok := other[j]; !ok {
			return false
		}
	}
	return true
}

// Edge 连接两个关节的线段（无向）
type Edge struct {
	A, B Joint
}

// Topology 需要绘制的线段，按绘制顺序排列
type Topology []Edge

// BasePose 返回火柴人的静止姿态，每次调用都返回新的副本
func BasePose() Pose {
	return Pose{
		Head:      Pt(256, 90),
		Neck:      Pt(256, 130),
		ShoulderL: Pt(210, 150),
		ElbowL:    Pt(190, 220),
		WristL:    Pt(175, 300),
		ShoulderR: Pt(300, 150),
		ElbowR:    Pt(330, 230),
		WristR:    Pt(350, 320),
		Hip:       Pt(256, 250),
		KneeL:     Pt(235, 340),
		AnkleL:    Pt(225, 430),
		KneeR:     Pt(280, 340),
		AnkleR:    Pt(290, 430),
	}
}

// StickFigure 返回火柴人的骨架连线
func StickFigure() Topology {
	return Topology{
		{Head, Neck},
		{Neck, ShoulderL}, {Neck, ShoulderR},
		{ShoulderL, ElbowL}, {ElbowL, WristL},
		{ShoulderR, ElbowR}, {ElbowR, WristR},
		{Neck, Hip},
		{Hip, KneeL}, {KneeL, AnkleL},
		{Hip, KneeR}, {KneeR, AnkleR},
	}
}
