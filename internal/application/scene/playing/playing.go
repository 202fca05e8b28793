// Package playing provides the boss-fight scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/bossrush/internal/application/replay"
	"github.com/younwookim/bossrush/internal/application/scene"
	"github.com/younwookim/bossrush/internal/application/state"
	"github.com/younwookim/bossrush/internal/application/system"
	"github.com/younwookim/bossrush/internal/domain/boss"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/fixed"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorFloor      = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerHit  = color.RGBA{255, 255, 255, 200}
	colorBoss       = color.RGBA{200, 100, 100, 255}
	colorBullet     = color.RGBA{255, 200, 100, 255}
	colorBomb       = color.RGBA{200, 150, 80, 255}
	colorFlame      = color.RGBA{255, 120, 40, 255}
	colorGlob       = color.RGBA{120, 220, 160, 255}
	colorReflected  = color.RGBA{255, 80, 80, 255}
	colorPlayerShot = color.RGBA{120, 200, 255, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorBossHPFG   = color.RGBA{200, 80, 80, 255}
)

// Playing is the boss-fight scene. It steps one Arena per frame,
// implements boss.Presenter to collect the boss's sprite placement,
// and draws everything as flat placeholder shapes.
type Playing struct {
	cfg     *config.GameConfig
	encCfg  *config.EncounterConfig
	arena   *system.Arena
	input   *system.InputSystem
	state   state.GameState
	screenW int
	screenH int

	// Camera shake, fed by the encounter's OnShake callback.
	shakeEnabled bool
	shakeFrames  int
	shakeMag     int

	// Last boss placement pushed through the Presenter interface.
	bossSprite boss.SpritePlacement
	bossShown  bool

	// Input playback; nil for live play.
	replayer *replay.Replayer

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a live Playing scene for the given encounter.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, encCfg *config.EncounterConfig, recordPath string) (*Playing, error) {
	p := &Playing{
		cfg:            cfg,
		encCfg:         encCfg,
		input:          system.NewInputSystem(),
		state:          state.StatePlaying,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		shakeEnabled:   cfg.Feedback.ScreenShake.Enabled,
		recordFilename: recordPath,
	}

	if err := p.buildArena(); err != nil {
		return nil, err
	}

	if recordPath != "" {
		p.recorder = NewRecorder(encCfg.ID)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p, nil
}

// NewReplay creates a Playing scene that feeds recorded input into the
// fight instead of the keyboard.
func NewReplay(cfg *config.GameConfig, encCfg *config.EncounterConfig, rep *replay.Replayer) (*Playing, error) {
	p := &Playing{
		cfg:          cfg,
		encCfg:       encCfg,
		state:        state.StatePlaying,
		screenW:      cfg.Display.ScreenWidth,
		screenH:      cfg.Display.ScreenHeight,
		shakeEnabled: cfg.Feedback.ScreenShake.Enabled,
		replayer:     rep,
	}

	if err := p.buildArena(); err != nil {
		return nil, err
	}

	return p, nil
}

// buildArena creates a fresh arena and wires its callbacks.
func (p *Playing) buildArena() error {
	arena, err := system.NewArena(p.cfg, p.encCfg)
	if err != nil {
		return err
	}

	arena.Encounter.OnShake = func(frames, magnitude int) {
		if !p.shakeEnabled {
			return
		}
		// A stronger request overrides a fading one.
		if frames > p.shakeFrames {
			p.shakeFrames = frames
		}
		if magnitude > p.shakeMag {
			p.shakeMag = magnitude
		}
	}
	arena.Encounter.Presenter = p

	p.arena = arena
	return nil
}

// Show implements boss.Presenter.
func (p *Playing) Show(s boss.SpritePlacement) {
	p.bossSprite = s
	p.bossShown = true
}

// Hide implements boss.Presenter.
func (p *Playing) Hide() {
	p.bossShown = false
}

// Update proceeds the fight state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver, state.StateVictory:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	// Get input: recorded stream during playback, keyboard otherwise.
	// An exhausted replay keeps the fight running on idle input.
	var in system.InputFrame
	if p.replayer != nil {
		in, _ = p.replayer.GetInput()
	} else {
		in = p.input.Poll()
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.arena.Step(in)

	// Tick down camera shake
	if p.shakeFrames > 0 {
		p.shakeFrames--
		if p.shakeFrames == 0 {
			p.shakeMag = 0
		}
	}

	// Check for a decided fight
	if p.arena.Over() {
		if p.arena.Won() {
			p.state = state.StateVictory
		} else {
			p.state = state.StateGameOver
		}
		// Auto-save recording when the fight ends
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	if err := p.buildArena(); err != nil {
		log.Printf("Failed to restart fight: %v", err)
		return
	}

	p.state = state.StatePlaying
	p.shakeFrames = 0
	p.shakeMag = 0
	p.bossShown = false

	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.encCfg.ID)
		log.Printf("Recording restarted")
	}
}

// camera returns the top-left world position of the view, centered on
// the player and clamped to the arena, with shake jitter applied.
func (p *Playing) camera() (fixed.Int, fixed.Int) {
	b := p.arena.Bounds()
	pos := p.arena.Player.Body().Pos

	camX := pos.X - fixed.FromInt(p.screenW/2)
	camY := pos.Y - fixed.FromInt(p.screenH/2)

	maxX := b.Max.X - fixed.FromInt(p.screenW)
	maxY := b.Max.Y - fixed.FromInt(p.screenH)
	if maxX < b.Min.X {
		maxX = b.Min.X
	}
	if maxY < b.Min.Y {
		maxY = b.Min.Y
	}
	camX = fixed.Clamp(camX, b.Min.X, maxX)
	camY = fixed.Clamp(camY, b.Min.Y, maxY)

	if p.shakeFrames > 0 {
		jx := float64(p.shakeMag) * (2*randFloat() - 1)
		jy := float64(p.shakeMag) * (2*randFloat() - 1)
		camX += fixed.FromInt(int(jx))
		camY += fixed.FromInt(int(jy))
	}

	return camX, camY
}

// Draw renders the fight (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawFloor(screen, camY)
	p.drawBoss(screen, camX, camY)
	p.drawHazards(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case state.StateVictory:
		p.drawVictoryOverlay(screen)
	}
}

func (p *Playing) drawFloor(screen *ebiten.Image, camY fixed.Int) {
	floorY := p.arena.Bounds().Max.Y.Floor() - camY.Floor()
	if floorY >= 0 && floorY <= p.screenH {
		ebitenutil.DrawRect(screen, 0, float64(floorY-2), float64(p.screenW), 2, colorFloor)
	}
}

func (p *Playing) drawBoss(screen *ebiten.Image, camX, camY fixed.Int) {
	p.arena.Encounter.Render(camX, camY)
	if !p.bossShown {
		return
	}

	s := p.bossSprite
	ebitenutil.DrawRect(screen, float64(s.X), float64(s.Y), 16, 16, colorBoss)
}

func (p *Playing) drawHazards(screen *ebiten.Image, camX, camY fixed.Int) {
	p.arena.Hazards.Each(func(kind boss.HazardKind, fromPlayer bool, pos entity.Vec2) {
		x := float64(pos.X.Floor() - camX.Floor() - 2)
		y := float64(pos.Y.Floor() - camY.Floor() - 2)

		c := hazardColor(kind, fromPlayer)
		ebitenutil.DrawRect(screen, x, y, 4, 4, c)
	})
}

func hazardColor(kind boss.HazardKind, fromPlayer bool) color.RGBA {
	if fromPlayer {
		return colorPlayerShot
	}
	switch kind {
	case boss.HazardBomb:
		return colorBomb
	case boss.HazardFlame:
		return colorFlame
	case boss.HazardGlob:
		return colorGlob
	case boss.HazardReflected:
		return colorReflected
	default:
		return colorBullet
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY fixed.Int) {
	a := p.arena.Player
	body := a.Body()

	w := float64(body.Hitbox.HalfW.Floor() * 2)
	h := float64(body.Hitbox.HalfH.Floor() * 2)
	x := float64(body.Pos.X.Floor()-camX.Floor()) - w/2
	y := float64(body.Pos.Y.Floor()-camY.Floor()) - h/2

	// Flash while invincible
	c := colorPlayer
	if a.IframeTimer > 0 && a.IframeTimer&1 == 1 {
		c = colorPlayerHit
	}

	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Boss health bar along the top
	b := p.arena.Encounter.Boss()
	if b.Active && b.HPMax > 0 {
		barX := 28.0
		barY := 4.0
		barW := float64(p.screenW) - 56.0
		barH := 6.0

		ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
		ratio := float64(b.HP) / float64(b.HPMax)
		if ratio < 0 {
			ratio = 0
		}
		ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorBossHPFG)

		ebitenutil.DebugPrintAt(screen, p.encCfg.Name, int(barX), int(barY+barH)+2)
	}

	// Player health bar
	barX := 10.0
	barY := float64(p.screenH - 16)
	barW := 80.0
	barH := 8.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := float64(p.arena.Player.HP) / float64(p.arena.Player.MaxHP)
	if ratio < 0 {
		ratio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	// Heavy ammo
	if p.arena.Player.HeavyAmmo >= 0 {
		ammoText := fmt.Sprintf("Heavy: %d", p.arena.Player.HeavyAmmo)
		ebitenutil.DebugPrintAt(screen, ammoText, int(barX+barW)+8, int(barY)-4)
	}

	if p.replayer != nil {
		replayText := fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
		ebitenutil.DebugPrint(screen, replayText)
	} else {
		ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | J: Fire | K: Heavy | ESC: Pause")
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nSurvived %d frames\n\nPress Z to retry", p.arena.Frame)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func (p *Playing) drawVictoryOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 80, 40, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("%s DEFEATED\n\nCleared in %d frames\n\nPress Z to refight", p.encCfg.Name, p.arena.Frame)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

var randState uint32 = 1

func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}
