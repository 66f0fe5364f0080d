package camgesture

import "testing"

type sampleKey struct {
	id      PointerID
	device  Device
	phase   Phase
	buttons Buttons
	pos     Vec2
}

func keys(samples []Sample) []sampleKey {
	out := make([]sampleKey, len(samples))
	for i, s := range samples {
		out[i] = sampleKey{s.ID, s.Device, s.Phase, s.Buttons, s.Position}
	}
	return out
}

func TestInputDifferMouse(t *testing.T) {
	var d inputDiffer
	frames := []struct {
		name string
		in   frameInput
		want []sampleKey
	}{
		{"first frame", frameInput{cursor: Vec2{10, 10}}, nil},
		{"hover", frameInput{cursor: Vec2{12, 10}}, []sampleKey{
			{0, DeviceMouse, PhaseMove, 0, Vec2{12, 10}},
		}},
		{"press", frameInput{cursor: Vec2{12, 10}, buttons: ButtonPrimary}, []sampleKey{
			{0, DeviceMouse, PhaseDown, ButtonPrimary, Vec2{12, 10}},
		}},
		{"drag", frameInput{cursor: Vec2{20, 10}, buttons: ButtonPrimary}, []sampleKey{
			{0, DeviceMouse, PhaseMove, ButtonPrimary, Vec2{20, 10}},
		}},
		{"add secondary", frameInput{cursor: Vec2{20, 10}, buttons: ButtonPrimary | ButtonSecondary}, []sampleKey{
			{0, DeviceMouse, PhaseDown, ButtonPrimary | ButtonSecondary, Vec2{20, 10}},
		}},
		{"release both", frameInput{cursor: Vec2{20, 10}}, []sampleKey{
			{0, DeviceMouse, PhaseUp, 0, Vec2{20, 10}},
		}},
		{"idle", frameInput{cursor: Vec2{20, 10}}, nil},
	}
	for _, f := range frames {
		got := keys(d.diff(f.in, nil))
		if len(got) != len(f.want) {
			t.Fatalf("%s: samples = %+v, want %+v", f.name, got, f.want)
		}
		for i := range got {
			if got[i] != f.want[i] {
				t.Errorf("%s: sample %d = %+v, want %+v", f.name, i, got[i], f.want[i])
			}
		}
	}
}

func TestInputDifferTouch(t *testing.T) {
	var d inputDiffer
	d.diff(frameInput{}, nil)

	got := keys(d.diff(frameInput{touches: []touchPoint{{id: 1, pos: Vec2{0, 0}}, {id: 2, pos: Vec2{10, 0}}}}, nil))
	if len(got) != 2 || got[0].phase != PhaseDown || got[1].phase != PhaseDown || got[1].id != 2 {
		t.Fatalf("downs = %+v", got)
	}

	got = keys(d.diff(frameInput{touches: []touchPoint{{id: 1, pos: Vec2{0, 0}}, {id: 2, pos: Vec2{20, 0}}}}, nil))
	if len(got) != 1 || got[0].phase != PhaseMove || got[0].pos != (Vec2{20, 0}) {
		t.Fatalf("moves = %+v", got)
	}

	got = keys(d.diff(frameInput{}, nil))
	want := []sampleKey{
		{1, DeviceTouch, PhaseUp, 0, Vec2{0, 0}},
		{2, DeviceTouch, PhaseUp, 0, Vec2{20, 0}},
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ups = %+v, want %+v", got, want)
	}
}

func TestInputDifferDrivesController(t *testing.T) {
	c, api, _ := newTestController()
	var d inputDiffer
	frames := []frameInput{
		{cursor: Vec2{10, 10}},
		{cursor: Vec2{10, 10}, buttons: ButtonPrimary},
		{cursor: Vec2{12, 11}, buttons: ButtonPrimary},
		{cursor: Vec2{12, 11}},
	}
	for _, f := range frames {
		for _, s := range d.diff(f, nil) {
			c.HandleSample(s)
		}
	}
	if !equalOps(api.ops(), []string{"begin", "rotate", "end"}) {
		t.Errorf("ops = %v", api.ops())
	}
}
