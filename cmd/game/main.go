package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/bossrush/internal/application/game"
	"github.com/younwookim/bossrush/internal/application/replay"
	"github.com/younwookim/bossrush/internal/application/scene"
	"github.com/younwookim/bossrush/internal/application/scene/playing"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	encounterFlag := flag.String("encounter", "sporeSpawn", "Encounter to fight (see -list)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded fight (e.g., -replay replay.json)")
	headlessFlag := flag.Bool("headless", false, "Run a replay without a window and print the outcome")
	listFlag := flag.Bool("list", false, "List available encounters and exit")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *listFlag {
		names, err := loader.ListEncounters()
		if err != nil {
			log.Fatalf("Failed to list encounters: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	// A replay file carries its own encounter name
	encounterName := *encounterFlag
	var rep *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		rep = replay.NewReplayer(*data)
		if data.Encounter != "" {
			encounterName = data.Encounter
		}
	}

	encCfg, err := loader.LoadEncounter(encounterName)
	if err != nil {
		log.Fatalf("Failed to load encounter: %v", err)
	}

	if *headlessFlag {
		if rep == nil {
			log.Fatal("-headless requires -replay")
		}
		result, err := runHeadless(cfg, encCfg, rep)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	// Create the fight scene
	var sc scene.Scene
	if rep != nil {
		sc, err = playing.NewReplay(cfg, encCfg, rep)
	} else {
		sc, err = playing.New(cfg, encCfg, *recordFlag)
	}
	if err != nil {
		log.Fatalf("Failed to create fight: %v", err)
	}

	g := game.New(sc, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Boss Rush - %s", encCfg.Name))
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
