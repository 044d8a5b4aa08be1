package define

// Side 肢体所在的一侧
type Side int

const (
	SIDE_LEFT Side = iota
	SIDE_RIGHT
)

func (s Side) String() string {
	if s == SIDE_LEFT {
		return "左"
	}
	return "右"
}
