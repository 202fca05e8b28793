package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig  `json:"display"`
	Player   PlayerConfig   `json:"player"`
	Feedback FeedbackConfig `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PlayerConfig tunes the avatar. Distances are pixels, speeds are
// pixels per frame, durations are frames.
type PlayerConfig struct {
	MaxHealth int            `json:"maxHealth"`
	Hitbox    HitboxConfig   `json:"hitbox"`
	Movement  MovementConfig `json:"movement"`
	Combat    CombatConfig   `json:"combat"`
}

type HitboxConfig struct {
	HalfWidth  int `json:"halfWidth"`
	HalfHeight int `json:"halfHeight"`
}

type MovementConfig struct {
	MoveSpeed    int `json:"moveSpeed"`
	JumpForce    int `json:"jumpForce"`
	Gravity      int `json:"gravity"` // 1/256 px/frame^2 steps
	MaxFallSpeed int `json:"maxFallSpeed"`
}

type CombatConfig struct {
	Iframes   int          `json:"iframes"`
	Knockback int          `json:"knockback"`
	Shot      WeaponConfig `json:"shot"`
	Heavy     WeaponConfig `json:"heavy"`
}

// WeaponConfig is one fire mode. Ammo of zero means unlimited.
type WeaponConfig struct {
	Damage   int `json:"damage"`
	Speed    int `json:"speed"`
	Cooldown int `json:"cooldown"`
	Ammo     int `json:"ammo"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type ScreenShakeConfig struct {
	Enabled bool `json:"enabled"`
}
