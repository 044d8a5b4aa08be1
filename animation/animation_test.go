package animation

import (
	"errors"
	"testing"

	"stickanim/pose"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPendulumPoses(t *testing.T) {
	base := pose.BasePose()
	p, err := NewPendulum(ShoulderPendulum, base, pose.LeftArm, DefaultSweep())
	if err != nil {
		t.Fatal(err)
	}
	if p.Frames() != 20 {
		t.Fatalf("frames: have %d, want 20", p.Frames())
	}
	angles := p.Angles()
	i := 0
	for got := range p.Poses() {
		want := pose.DerivePose(base, angles[i])
		for j, pt := range want {
			if got[j] != pt {
				t.Errorf("frame %d joint %s: have %v, want %v", i, j, got[j], pt)
			}
		}
		i++
	}
	if i != 20 {
		t.Errorf("yielded %d poses, want 20", i)
	}
}

func TestPendulumStopsEarly(t *testing.T) {
	p, err := NewPendulum(ShoulderPendulum, pose.BasePose(), pose.LeftArm, DefaultSweep())
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range p.Poses() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("have %d", n)
	}
}

func TestPendulumInvalidSweep(t *testing.T) {
	_, err := NewPendulum("bad", pose.BasePose(), pose.LeftArm, Sweep{Lower: 0, Upper: 1})
	if !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("have %v, want ErrInvalidSweep", err)
	}
}

func TestReachPoses(t *testing.T) {
	base := pose.BasePose()
	target := ArmsRaised(base, 80)
	r, err := NewReach(ArmReach, base, target, 4)
	if err != nil {
		t.Fatal(err)
	}
	if r.Frames() != 8 {
		t.Fatalf("frames: have %d, want 8", r.Frames())
	}
	var poses []pose.Pose
	for p := range r.Poses() {
		poses = append(poses, p)
	}
	for j, pt := range base {
		if poses[0][j] != pt {
			t.Errorf("first frame joint %s: have %v, want %v", j, poses[0][j], pt)
		}
	}
	for j, pt := range target {
		if poses[4][j] != pt {
			t.Errorf("peak frame joint %s: have %v, want %v", j, poses[4][j], pt)
		}
	}
	if d := r2.Norm(r2.Sub(poses[1][pose.Head], base[pose.Head])); d > 1e-9 {
		t.Errorf("head moved during reach")
	}
}

func TestReachRejectsMismatch(t *testing.T) {
	to := pose.BasePose()
	delete(to, pose.Head)
	if _, err := NewReach("bad", pose.BasePose(), to, 4); !errors.Is(err, pose.ErrJointMismatch) {
		t.Errorf("have %v, want ErrJointMismatch", err)
	}
	if _, err := NewReach("bad", pose.BasePose(), pose.BasePose(), 0); err == nil {
		t.Error("expected error for zero steps")
	}
}

func TestBuiltinRegistry(t *testing.T) {
	r, err := Builtin(pose.BasePose(), DefaultSweep())
	if err != nil {
		t.Fatal(err)
	}
	names := r.Names()
	want := []string{ArmReach, ShoulderPendulum, ShoulderPendulumRight}
	if len(names) != len(want) {
		t.Fatalf("have %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("have %v, want %v", names, want)
		}
	}

	anim, err := r.Get(ShoulderPendulum)
	if err != nil {
		t.Fatal(err)
	}
	if anim.Frames() != 20 {
		t.Errorf("frames: have %d", anim.Frames())
	}
	right, err := r.Get(ShoulderPendulumRight)
	if err != nil {
		t.Fatal(err)
	}
	if right.Frames() != 20 {
		t.Errorf("right frames: have %d", right.Frames())
	}

	if _, err := r.Get("cartwheel"); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("have %v, want ErrUnknownAnimation", err)
	}
}
