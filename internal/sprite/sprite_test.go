package sprite

import "testing"

func testLibrary() *Library {
	lib := NewLibrary()
	lib.Add(Animation{Key: "run", Frames: Range(0, 3), FrameRate: 10, Repeat: true})
	lib.Add(Animation{Key: "idle", Frames: []int{4}, FrameRate: 20})
	lib.Add(Animation{Key: "once", Frames: Range(5, 6), FrameRate: 10})
	return lib
}

func TestRange(t *testing.T) {
	got := Range(5, 8)
	expected := []int{5, 6, 7, 8}
	if len(got) != len(expected) {
		t.Fatalf("Range(5, 8) = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Range(5, 8)[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}

	if Range(3, 2) != nil {
		t.Error("inverted range should be empty")
	}
}

func TestPlayerLoops(t *testing.T) {
	p := NewPlayer(testLibrary())
	if p.Frame() != -1 || p.Key() != "" {
		t.Fatal("new player should have nothing playing")
	}

	p.Play("run", true)
	frames := []int{p.Frame()}
	for i := 0; i < 5; i++ {
		p.Update(0.1)
		frames = append(frames, p.Frame())
	}

	expected := []int{0, 1, 2, 3, 0, 1}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Errorf("frame %d = %d, expected %d (all: %v)", i, frames[i], expected[i], frames)
		}
	}
}

func TestPlayerOneShotHoldsLastFrame(t *testing.T) {
	p := NewPlayer(testLibrary())
	p.Play("once", false)

	for i := 0; i < 10; i++ {
		p.Update(0.1)
	}
	if p.Frame() != 6 {
		t.Errorf("one-shot should hold last frame, got %d", p.Frame())
	}
}

func TestPlayerIgnoreIfPlaying(t *testing.T) {
	p := NewPlayer(testLibrary())
	p.Play("run", true)
	p.Update(0.2)

	p.Play("run", true)
	if p.Frame() != 2 {
		t.Errorf("ignoreIfPlaying should keep progress, got frame %d", p.Frame())
	}

	p.Play("run", false)
	if p.Frame() != 0 {
		t.Errorf("restart should reset to first frame, got %d", p.Frame())
	}

	p.Play("idle", true)
	if p.Key() != "idle" || p.Frame() != 4 {
		t.Errorf("switching animation failed: key=%q frame=%d", p.Key(), p.Frame())
	}
}

func TestPlayerUnknownKey(t *testing.T) {
	p := NewPlayer(testLibrary())
	p.Play("missing", false)
	if p.Key() != "" {
		t.Errorf("unknown key should be ignored, got %q", p.Key())
	}
}
