package animations

import (
	"testing"

	"github.com/automoto/squishroom/shared/gameplay"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)
	var frames []int
	for range 6 {
		a.Update()
		frames = append(frames, a.Frame())
	}
	want := []int{0, 1, 1, 2, 2, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Error("Looped = false after wrapping")
	}
}

func TestLandIsOneShot(t *testing.T) {
	a := ForKey(gameplay.AnimLand)
	if !a.FreezeOnComplete {
		t.Fatal("land should freeze on completion")
	}
	for i := 0; i < 100 && !a.Looped; i++ {
		a.Update()
	}
	if !a.Looped {
		t.Fatal("land never completed")
	}
	if a.Frame() != a.Last {
		t.Errorf("frame = %d, want last frame %d", a.Frame(), a.Last)
	}

	a.Restart()
	if a.Looped || a.Frame() != a.First {
		t.Errorf("Restart left Looped=%v frame=%d", a.Looped, a.Frame())
	}
}

func TestForKeyUnknownFallsBackToIdle(t *testing.T) {
	a := ForKey("missing")
	if a.FreezeOnComplete {
		t.Error("fallback should loop like idle")
	}
}
