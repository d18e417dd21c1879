// Command demo drives a single PlayerMachine with synthetic input so the
// engine's behaviour can be inspected from the console. It is scaffolding
// for manual inspection, not part of the library's public contract.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"charability/internal/action"
	"charability/internal/behavior"
	"charability/internal/intent"
	"charability/internal/motion"
	"charability/internal/motiondata"
	"charability/internal/sim"
	"charability/internal/telemetry"
	"charability/internal/telemetry/sinks"
)

func main() {
	logger := log.Default()

	cfg := telemetry.DefaultConfig()
	if raw := os.Getenv("TELEMETRY_BUFFER_SIZE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.BufferSize = value
		} else {
			logger.Printf("invalid TELEMETRY_BUFFER_SIZE=%q: %v", raw, err)
		}
	}

	available := map[string]telemetry.Sink{"console": sinks.NewConsole(os.Stdout)}
	router, err := telemetry.NewRouter(cfg, telemetry.SystemClock{}, logger, available)
	if err != nil {
		log.Fatalf("demo: failed to construct telemetry router: %v", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			logger.Printf("demo: failed to close telemetry router: %v", cerr)
		}
	}()

	pm := buildPlayerMachine()
	pm.Action.SetPublisher(router)
	pm.Behaviour.SetPublisher(router)

	ctl := &intent.Controller{}
	delta := 1.0 / 60.0
	frames := 180

	for tick := 0; tick < frames; tick++ {
		if tick == 10 {
			ctl.JumpOnce.Start()
		}
		ctl.MoveDirection = 1

		snapshot := ctl.Snapshot()
		phy := &sim.PhyParam{
			Delta:        delta,
			IsOnFloor:    tick < 10 || tick > 40,
			Instructions: snapshot,
		}
		pm.ProcessPhysics(phy)
		ctl.EchoFrom(snapshot)

		frame := &sim.FrameParam{Delta: delta}
		eff := pm.TickFrame(frame)
		if tick%30 == 0 {
			fmt.Printf("tick %3d mode=%s anim=%s\n", tick, pm.MotionMode(), eff.AnimName)
		}
	}
}

func buildPlayerMachine() *motion.PlayerMachine {
	am := action.NewMachine()
	am.Add(&action.Definition{Name: "idle", AnimFirst: "idle_anim"})
	am.Init("idle")

	data := &motiondata.Data{
		RunXVelocity:  3,
		JumpVelocity:  8,
		FallVelocity:  -10,
		Gravity:       20,
		ClimbVelocity: 1.5,
	}
	bm := behavior.NewMachine(data)
	bm.Add(behavior.NewCommon("common_anim"))
	bm.Add(behavior.NewOnFloor("run", "idle", "landing"))
	bm.Add(behavior.NewInAir("jump", "fall", "jump_on_wall", "double_jump", 0.3, 1))
	bm.Add(behavior.NewClimbWall("climb_begin", "climbing"))

	return motion.NewPlayerMachine(am, bm)
}
