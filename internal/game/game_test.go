package game

import (
	"testing"

	"github.com/toiletrun/toiletrun/internal/config"
	"github.com/toiletrun/toiletrun/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func TestGameStartMode(t *testing.T) {
	g := newTestGame(1)

	if g.State().Mode != core.ModeStart {
		t.Fatalf("mode after reset = %v, expected Start", g.State().Mode)
	}

	// Without a flap or confirm, nothing moves.
	for i := 0; i < 10; i++ {
		res := g.Step(input(core.ActionPause, core.ActionRestart))
		if res.State.Mode != core.ModeStart {
			t.Fatalf("mode = %v after ignored input, expected Start", res.State.Mode)
		}
		if res.State.Frame != 0 {
			t.Fatalf("frame = %d on the start screen, expected 0", res.State.Frame)
		}
	}
}

func TestGameFirstFlapStartsRound(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(input(core.ActionFlap))
	if res.State.Mode != core.ModePlaying {
		t.Fatalf("mode = %v after first flap, expected Playing", res.State.Mode)
	}
	if !hasEvent(res.Events, core.EventFlap) {
		t.Error("expected a flap event on the starting flap")
	}
	if res.State.Frame != 1 {
		t.Errorf("frame = %d after starting tick, expected 1", res.State.Frame)
	}
}

func TestGameConfirmAlsoStarts(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(input(core.ActionConfirm))
	if res.State.Mode != core.ModePlaying {
		t.Errorf("mode = %v after confirm, expected Playing", res.State.Mode)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionFlap))
	for i := 0; i < 5; i++ {
		g.Step(input())
	}

	res := g.Step(input(core.ActionPause))
	if res.State.Mode != core.ModePaused {
		t.Fatalf("mode = %v after pause, expected Paused", res.State.Mode)
	}
	frozen := g.Snapshot()

	// Flaps and empty ticks do nothing while paused.
	g.Step(input(core.ActionFlap))
	for i := 0; i < 10; i++ {
		g.Step(input())
	}
	after := g.Snapshot()
	if frozen.Frame != after.Frame || frozen.PlayerY != after.PlayerY ||
		frozen.PlayerVel != after.PlayerVel || len(frozen.Obstacles) != len(after.Obstacles) {
		t.Errorf("paused simulation advanced: %+v -> %+v", frozen, after)
	}

	// Pause again resumes exactly where it left off.
	res = g.Step(input(core.ActionPause))
	if res.State.Mode != core.ModePlaying {
		t.Fatalf("mode = %v after resume, expected Playing", res.State.Mode)
	}
	res = g.Step(input())
	if res.State.Frame != frozen.Frame+1 {
		t.Errorf("frame = %d after resume tick, expected %d", res.State.Frame, frozen.Frame+1)
	}
}

func TestGameFallEndsRound(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionFlap))

	hits := 0
	for i := 0; i < 600 && g.State().Mode == core.ModePlaying; i++ {
		res := g.Step(input())
		if hasEvent(res.Events, core.EventHit) {
			hits++
		}
	}
	if g.State().Mode != core.ModeGameOver {
		t.Fatalf("mode = %v after free fall, expected GameOver", g.State().Mode)
	}
	if hits != 1 {
		t.Errorf("hit events = %d, expected exactly 1 per round", hits)
	}

	// GameOver is terminal for everything except restart.
	frozen := g.Snapshot()
	g.Step(input(core.ActionFlap, core.ActionPause))
	after := g.Snapshot()
	if frozen.Frame != after.Frame || frozen.Mode != after.Mode {
		t.Error("GameOver state changed on non-restart input")
	}
}

func TestGameEndRoundFiresOnce(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionFlap))

	g.events = g.events[:0]
	g.endRound()
	g.endRound()

	if g.mode != core.ModeGameOver {
		t.Fatalf("mode = %v, expected GameOver", g.mode)
	}
	if len(g.events) != 1 || g.events[0] != core.EventHit {
		t.Errorf("events = %v, expected a single hit event", g.events)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(1)
	g.SetRecords(12, 3)
	g.Step(input(core.ActionFlap))
	for i := 0; i < 600 && g.State().Mode == core.ModePlaying; i++ {
		g.Step(input())
	}
	if g.State().Mode != core.ModeGameOver {
		t.Fatal("round did not end")
	}

	res := g.Step(input(core.ActionRestart))
	if res.State.Mode != core.ModePlaying {
		t.Fatalf("mode = %v after restart, expected Playing", res.State.Mode)
	}
	if res.State.Score != 0 || res.State.Level != 1 || res.State.Frame != 0 {
		t.Errorf("round state after restart = %+v, expected fresh round", res.State)
	}
	if len(g.field.Obstacles()) != 0 {
		t.Error("obstacles survived the restart")
	}

	hs, bl := g.Records()
	if hs != 12 || bl != 3 {
		t.Errorf("records after restart = %d/%d, expected 12/3 preserved", hs, bl)
	}
}

func TestGameVelocityNeverExceedsMax(t *testing.T) {
	g := newTestGame(1)
	maxVel := g.tuning.Physics.MaxVelocity
	g.Step(input(core.ActionFlap))

	for i := 0; i < 600 && g.State().Mode == core.ModePlaying; i++ {
		g.Step(input())
		if g.player.Vel > maxVel {
			t.Fatalf("tick %d: velocity %v exceeds max %v", i, g.player.Vel, maxVel)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(g *Game, tick int) core.InputFrame {
		if tick%13 == 0 {
			return input(core.ActionFlap)
		}
		return input()
	}

	a := newTestGame(99)
	b := newTestGame(99)
	a.Step(input(core.ActionFlap))
	b.Step(input(core.ActionFlap))

	for tick := 0; tick < 400; tick++ {
		a.Step(script(a, tick))
		b.Step(script(b, tick))

		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Frame != sb.Frame || sa.Mode != sb.Mode || sa.Score != sb.Score ||
			sa.PlayerY != sb.PlayerY || sa.PlayerVel != sb.PlayerVel ||
			len(sa.Obstacles) != len(sb.Obstacles) {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", tick, sa, sb)
		}
		for i := range sa.Obstacles {
			if sa.Obstacles[i] != sb.Obstacles[i] {
				t.Fatalf("tick %d: obstacle %d diverged", tick, i)
			}
		}
	}
}

// corridorTuning pins every obstacle to an identical centered gap so a
// simple hover controller can survive indefinitely.
func corridorTuning() config.Config {
	cfg := config.Default()
	floorY := cfg.World.FloorY()
	gap := cfg.Leveling.BaseGap
	margin := (floorY - gap) / 2
	cfg.Leveling.MinGap = gap
	cfg.Leveling.GapDecrement = 0
	cfg.Obstacles.MinTopMargin = margin
	cfg.Obstacles.MinBottomMargin = margin
	return cfg
}

// hover flaps whenever the player center falls below the corridor center.
func hover(g *Game) core.InputFrame {
	center := g.tuning.World.FloorY() / 2
	if g.player.Y+g.player.H/2 > center && g.player.Vel > 0 {
		return input(core.ActionFlap)
	}
	return input()
}

func TestGameScoringAndLeveling(t *testing.T) {
	g := New(corridorTuning())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	g.Step(input(core.ActionFlap))

	scoreEvents := 0
	lastScore := 0
	for tick := 0; tick < 4000; tick++ {
		res := g.Step(hover(g))
		if res.State.Mode != core.ModePlaying {
			t.Fatalf("tick %d: round ended at score %d", tick, res.State.Score)
		}
		if hasEvent(res.Events, core.EventScore) {
			scoreEvents++
			if res.State.Score <= lastScore {
				t.Fatalf("tick %d: score event without score increase", tick)
			}
		}
		if res.State.Score < lastScore {
			t.Fatalf("tick %d: score decreased %d -> %d", tick, lastScore, res.State.Score)
		}
		lastScore = res.State.Score

		wantLevel := g.curve.LevelFor(res.State.PipesPassed)
		if res.State.Level != wantLevel {
			t.Fatalf("tick %d: level = %d with %d passes, expected %d",
				tick, res.State.Level, res.State.PipesPassed, wantLevel)
		}
	}

	if lastScore < 10 {
		t.Errorf("score after 4000 ticks = %d, expected double digits", lastScore)
	}
	if scoreEvents == 0 {
		t.Error("no score events observed")
	}
	if g.State().Level < 2 {
		t.Errorf("level = %d after %d passes, expected leveling to kick in",
			g.State().Level, g.State().PipesPassed)
	}
}

func TestGameRecordsFoldOnRoundEnd(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionFlap))

	g.keeper.Score = 7
	g.keeper.PipesPassed = 7
	g.keeper.Level = 2
	g.endRound()

	hs, bl := g.Records()
	if hs != 7 || bl != 2 {
		t.Errorf("records = %d/%d after round, expected 7/2", hs, bl)
	}

	// A worse round never lowers the records.
	g.Step(input(core.ActionRestart))
	g.keeper.Score = 3
	g.keeper.Level = 1
	g.endRound()
	hs, bl = g.Records()
	if hs != 7 || bl != 2 {
		t.Errorf("records = %d/%d after worse round, expected 7/2 preserved", hs, bl)
	}
}
