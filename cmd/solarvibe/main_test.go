package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/magi42/solarvibe"
	"gonum.org/v1/gonum/floats"
)

// run executes the command line and returns its standard output.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	t.Setenv("SOLARVIBE_LOG_LEVEL", "error")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.Bytes(), err
}

func mustRun(t *testing.T, args ...string) []byte {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %s", args, err)
	}
	return out
}

func TestPlanCommand(t *testing.T) {
	var plan []map[string]any
	if err := json.Unmarshal(mustRun(t, "plan"), &plan); err != nil {
		t.Fatal(err)
	}
	if len(plan) != 31 || plan[0]["id"] != "sun" {
		t.Fatalf("unexpected plan of %d bodies", len(plan))
	}
	for _, b := range plan {
		switch b["id"] {
		case "titan":
			if b["placement"] != "ring" || b["alignment"] == nil {
				t.Fatalf("unexpected titan plan %v", b)
			}
		case "earth":
			if _, ok := b["alignment"]; ok {
				t.Fatalf("earth should not be aligned: %v", b)
			}
		}
	}
}

func TestStateCommand(t *testing.T) {
	var snap solarvibe.Snapshot
	if err := json.Unmarshal(mustRun(t, "state", "--at", "2030-01-01 00:00:00"), &snap); err != nil {
		t.Fatal(err)
	}
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if !snap.Instant.Equal(at) || snap.JulianDay != 2462502.5 || len(snap.Bodies) != 31 {
		t.Fatalf("unexpected snapshot %s %f %d", snap.Instant, snap.JulianDay, len(snap.Bodies))
	}
	e := solarvibe.NewEngine(solarvibe.SolarSystem(), solarvibe.DefaultScaleConfig())
	e.Update(at, 0)
	for i, b := range e.Bodies() {
		p := b.Position()
		if snap.Bodies[i].ID != b.ID() || !floats.EqualApprox(snap.Bodies[i].Position[:], p[:], 1e-12) {
			t.Fatalf("%s at %v, expected %v", b.ID(), snap.Bodies[i].Position, p)
		}
	}
	if snap.Bodies[0].Position != (mgl64.Vec3{}) {
		t.Fatal("sun not at the origin")
	}
	if _, err := run(t, "state", "--at", "someday"); err == nil {
		t.Fatal("expected a date error")
	}
}

func TestPathCommand(t *testing.T) {
	var line []mgl64.Vec3
	if err := json.Unmarshal(mustRun(t, "path", "earth"), &line); err != nil {
		t.Fatal(err)
	}
	if len(line) != 513 || line[0] != line[512] {
		t.Fatalf("unexpected path of %d points", len(line))
	}
	if _, err := run(t, "path", "sun"); err == nil {
		t.Fatal("expected an error for a body without orbit")
	}
	if _, err := run(t, "path"); err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestTrajectoryCommand(t *testing.T) {
	out := mustRun(t, "trajectory", "mars", "--from", "2024-01-01 00:00:00", "--until", "2024-01-03 00:00:00", "--step", "24h")
	states, err := solarvibe.ParseTrajectory(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 3 || states[0].JD != 2460310.5 || states[2].JD != 2460312.5 {
		t.Fatalf("unexpected trajectory %+v", states)
	}
	if _, err := run(t, "trajectory", "mars", "--from", "2024-01-03 00:00:00", "--until", "2024-01-01 00:00:00"); err == nil {
		t.Fatal("expected an error for a reversed range")
	}
}

func TestCatalogueCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, mustRun(t, "catalogue"), 0o600); err != nil {
		t.Fatal(err)
	}
	if out := string(mustRun(t, "--catalogue", path, "catalogue", "--check")); !strings.Contains(out, "31 bodies OK") {
		t.Fatalf("unexpected check output %q", out)
	}
	if err := os.WriteFile(path, []byte(`{"version": "1.0", "bodies": [`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--catalogue", path, "catalogue", "--check"); err == nil {
		t.Fatal("expected an error for a broken catalogue")
	}
}
