package profile

import "testing"

func TestMake(t *testing.T) {
	c := Make(WithMode("cpu"), WithPath("/tmp/prof"), WithQuiet(true))

	want := Config{Mode: "cpu", Path: "/tmp/prof", Quiet: true}
	if c != want {
		t.Errorf("Make() = %+v, want %+v", c, want)
	}

	if (Make() != Config{}) {
		t.Error("Make() without options should be the zero Config")
	}
}

func TestStart_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero", Config{}},
		{"unknown mode", Make(WithMode("nonsense"), WithPath(t.TempDir()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.cfg.Start()
			if _, ok := s.(ignore); !ok {
				t.Errorf("Start() = %T, want no-op", s)
			}

			s.Stop()
			s.Stop()
		})
	}
}

func TestEnabled(t *testing.T) {
	if Enabled("") {
		t.Error("empty mode reported as enabled")
	}

	for _, m := range Modes() {
		if !Enabled(m) {
			t.Errorf("Enabled(%q) = false for listed mode", m)
		}
	}
}
