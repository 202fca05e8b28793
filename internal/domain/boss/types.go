package boss

// Type identifies a boss kind. TypeNone is the "no boss" sentinel.
type Type int

const (
	TypeNone Type = iota
	TypeSporeSpawn
	TypeCrocomire
	TypeBombTorizo
	TypeKraid
	TypeBotwoon
	TypePhantoon
	TypeDraygon
	TypeGoldenTorizo
	TypeRidley
	TypeMotherBrain
	typeCount
)

var typeNames = map[Type]string{
	TypeNone:         "none",
	TypeSporeSpawn:   "sporeSpawn",
	TypeCrocomire:    "crocomire",
	TypeBombTorizo:   "bombTorizo",
	TypeKraid:        "kraid",
	TypeBotwoon:      "botwoon",
	TypePhantoon:     "phantoon",
	TypeDraygon:      "draygon",
	TypeGoldenTorizo: "goldenTorizo",
	TypeRidley:       "ridley",
	TypeMotherBrain:  "motherBrain",
}

// String returns the config/display name of the boss type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// TypeByName resolves a config name to a Type.
// Unknown names resolve to TypeNone.
func TypeByName(name string) Type {
	for t, n := range typeNames {
		if n == name {
			return t
		}
	}
	return TypeNone
}
