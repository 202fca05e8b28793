package main

import (
	"fmt"

	"github.com/younwookim/bossrush/internal/application/replay"
	"github.com/younwookim/bossrush/internal/application/system"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// settleFrames bounds the idle run-out after the input stream ends, so
// a death animation in progress can finish and be counted.
const settleFrames = 600

// ReplayResult summarizes a headless replay run.
type ReplayResult struct {
	Encounter string
	Frames    int
	Won       bool
	PlayerHP  int
	BossHP    int
}

func (r ReplayResult) String() string {
	outcome := "UNDECIDED"
	if r.Won {
		outcome = "WON"
	} else if r.PlayerHP <= 0 {
		outcome = "LOST"
	}
	return fmt.Sprintf("%s: %s after %d frames (player HP %d, boss HP %d)",
		r.Encounter, outcome, r.Frames, r.PlayerHP, r.BossHP)
}

// runHeadless steps a fight against recorded input with no window
// attached. The simulation is deterministic, so the same replay always
// produces the same result.
func runHeadless(cfg *config.GameConfig, encCfg *config.EncounterConfig, rep *replay.Replayer) (ReplayResult, error) {
	arena, err := system.NewArena(cfg, encCfg)
	if err != nil {
		return ReplayResult{}, err
	}

	for !arena.Over() {
		in, ok := rep.GetInput()
		if !ok {
			break
		}
		arena.Step(in)
	}

	// The stream usually ends mid death animation; run it out on idle
	// input so the outcome is counted.
	b := arena.Encounter.Boss()
	for i := 0; i < settleFrames && b.Active && b.HP == 0; i++ {
		arena.Step(system.InputFrame{})
	}

	return ReplayResult{
		Encounter: encCfg.ID,
		Frames:    arena.Frame,
		Won:       arena.Won(),
		PlayerHP:  arena.Player.HP,
		BossHP:    arena.Encounter.Boss().HP,
	}, nil
}
