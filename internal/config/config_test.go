package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WindowWidth != 900 || cfg.WindowHeight != 700 {
		t.Errorf("window = %dx%d, want 900x700", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TargetFPS != 60 {
		t.Errorf("fps = %d, want 60", cfg.TargetFPS)
	}
	if cfg.StepInterval != 2*time.Second {
		t.Errorf("step interval = %v, want 2s", cfg.StepInterval)
	}
	if cfg.Sim.MutationChance != 0.1 || cfg.Sim.MaxStrainID != 4 || cfg.Sim.DefenseStrength != 1.0 {
		t.Errorf("sim params = %+v", cfg.Sim)
	}
	if len(cfg.Sim.DefenseNodes) != 44 {
		t.Errorf("defense set has %d nodes, want 44", len(cfg.Sim.DefenseNodes))
	}
	if diff := cmp.Diff([]int{0}, cfg.Sim.InitialInfected); diff != "" {
		t.Errorf("initial infected (-want +got):\n%s", diff)
	}
}

func TestDefaultDoesNotAliasDefenseNodes(t *testing.T) {
	cfg := Default()
	cfg.Sim.DefenseNodes[0] = -1
	if DefenseNodes[0] != 2 {
		t.Fatalf("Default leaked the package defense slice")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed: strconv.FormatUint(12345, 10),
		EnvMute: "true",
	}
	cfg, err := applyEnv(Default(), func(k string) string { return env[k] })
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12345 || cfg.Audio {
		t.Fatalf("seed=%d audio=%v, want 12345/false", cfg.Seed, cfg.Audio)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	tests := []map[string]string{
		{EnvSeed: "not-a-number"},
		{EnvMute: "perhaps"},
	}
	for _, env := range tests {
		if _, err := applyEnv(Default(), func(k string) string { return env[k] }); err == nil {
			t.Errorf("env %v: expected error", env)
		}
	}
}
