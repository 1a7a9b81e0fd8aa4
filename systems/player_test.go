package systems

import (
	"testing"

	cfg "github.com/automoto/scaaale/config"
)

func TestPlayerKeepsPipelineAcrossTuningReloads(t *testing.T) {
	e := newTestECS(t, flatLevel("tuning"))
	player := testPlayer(t, e)
	pipeline := player.Pipeline
	if pipeline == nil {
		t.Fatal("player created without a pipeline")
	}

	UpdatePlayer(e)
	UpdatePlayer(e)
	if player.Pipeline != pipeline {
		t.Fatal("pipeline replaced without a reload")
	}

	if err := cfg.ApplyTuning([]byte("player:\n  max_velocity_x: 50\n  damping: 0.2\n")); err != nil {
		t.Fatal(err)
	}
	UpdatePlayer(e)
	if player.Pipeline != pipeline {
		t.Fatal("a reload should refresh the pipeline, not replace it")
	}
	if player.Pipeline.Params.MaxVelocity.X != 50 || player.Velocity.Max.X != 50 || player.Velocity.Damping != 0.2 {
		t.Fatalf("params max=%v actor max=%v damping=%v",
			player.Pipeline.Params.MaxVelocity.X, player.Velocity.Max.X, player.Velocity.Damping)
	}
	if player.Tuning != cfg.Generation() {
		t.Fatalf("tuning generation = %d, want %d", player.Tuning, cfg.Generation())
	}
}
