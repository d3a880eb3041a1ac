package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"geomkit/internal/closest"
	"geomkit/internal/mathutil"
)

func TestBuiltin(t *testing.T) {
	want := map[string]Result{
		"skew-lines":         {OnA: mathutil.Vec3{0, 0, 0}, OnB: mathutil.Vec3{0, 1, 0}, Distance: 1},
		"identical-segments": {OnA: mathutil.Vec3{0, 0, 0}, OnB: mathutil.Vec3{0, 0, 0}, Distance: 0},
		"parallel-lines":     {OnA: mathutil.Vec3{0, 0, 0}, OnB: mathutil.Vec3{0, 1, 0}, Distance: 1},
		"disjoint-segments":  {OnA: mathutil.Vec3{1, 0, 0}, OnB: mathutil.Vec3{5, 1, 0}, Distance: 4.123105625617661},
	}
	for _, s := range Builtin() {
		got, err := s.Solve()
		if err != nil {
			t.Fatalf("%s: %v", s.Name, err)
		}
		w, ok := want[s.Name]
		if !ok {
			t.Fatalf("unexpected scenario %s", s.Name)
		}
		if got.OnA.Dist(w.OnA) > 1e-9 || got.OnB.Dist(w.OnB) > 1e-9 ||
			!scalar.EqualWithinAbs(got.Distance, w.Distance, 1e-9) {
			t.Errorf("%s: got %+v, want %+v", s.Name, got, w)
		}
	}
}

func TestSolveDegenerate(t *testing.T) {
	s := Scenario{
		Name: "point", Mode: Segments,
		A0: mathutil.Vec3{1, 1, 1}, A1: mathutil.Vec3{1, 1, 1},
		B0: mathutil.Vec3{0, 0, 0}, B1: mathutil.Vec3{1, 0, 0},
	}
	if _, err := s.Solve(); !errors.Is(err, closest.ErrDegenerate) {
		t.Fatalf("err = %v, want ErrDegenerate", err)
	}
	s.A1 = mathutil.Vec3{2, 1, 1}
	s.B1 = s.B0
	if _, err := s.Solve(); !errors.Is(err, closest.ErrDegenerate) {
		t.Fatalf("err = %v, want ErrDegenerate", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenes.json")
	data := `[
  {"name": "cross", "mode": "lines", "a0": [0,0,0], "a1": [1,0,0], "b0": [0,1,1], "b1": [0,2,1]},
  {"a0": [0,0,0], "a1": [1,0,0], "b0": [3,-1,2], "b1": [3,1,2]}
]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("loaded %d scenarios, want 2", len(list))
	}
	if list[0].Name != "cross" || list[0].Mode != Lines || list[0].B1 != (mathutil.Vec3{0, 2, 1}) {
		t.Errorf("first scenario = %+v", list[0])
	}
	if list[1].Name != "scenario-1" || list[1].Mode != Segments {
		t.Errorf("defaults not applied: %+v", list[1])
	}

	res, err := list[1].Solve()
	if err != nil {
		t.Fatal(err)
	}
	if res.OnB.Dist(mathutil.Vec3{3, 0, 2}) > 1e-9 {
		t.Errorf("OnB = %v, want (3,0,2)", res.OnB)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`[{"mode": "rays"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown mode: expected error")
	}
}

func TestLoadNames(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		want    []string
	}{
		{"parent dir", `[{"name": "../x", "a1": [1,0,0], "b1": [0,1,0]}]`, true, nil},
		{"separator", `[{"name": "a/b", "a1": [1,0,0], "b1": [0,1,0]}]`, true, nil},
		{"backslash", `[{"name": "a\\b", "a1": [1,0,0], "b1": [0,1,0]}]`, true, nil},
		{"duplicate", `[{"name": "dup", "a1": [1,0,0], "b1": [0,1,0]}, {"name": "dup", "a1": [1,0,0], "b1": [0,1,0]}]`, true, nil},
		{"auto name taken", `[{"a1": [1,0,0], "b1": [0,1,0]}, {"name": "scenario-0", "a1": [1,0,0], "b1": [0,1,0]}]`, false,
			[]string{"scenario-0-2", "scenario-0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenes.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			list, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", list)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			for i, s := range list {
				if s.Name != tt.want[i] {
					t.Errorf("name %d = %q, want %q", i, s.Name, tt.want[i])
				}
			}
		})
	}
}

func TestSolveNonFinite(t *testing.T) {
	s := Scenario{
		Name: "huge", Mode: Lines,
		A0: mathutil.Vec3{0, 0, 0}, A1: mathutil.Vec3{1e200, 0, 0},
		B0: mathutil.Vec3{0, 1, 0}, B1: mathutil.Vec3{0, 1, 1e200},
	}
	if res, err := s.Solve(); err == nil {
		t.Fatalf("expected error, got %+v", res)
	}
}
