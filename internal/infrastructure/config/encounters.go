package config

// EncounterConfig is the root config for encounter JSON files: one
// boss arena, who fights in it, and where everyone starts.
type EncounterConfig struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Boss        string         `json:"boss"`
	BossSpawn   PositionConfig `json:"bossSpawn"`
	PlayerSpawn PositionConfig `json:"playerSpawn"`
	Arena       BoundsConfig   `json:"arena"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundsConfig is the walkable extent of the arena, in pixels.
type BoundsConfig struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}
