package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Fire
	H bool `json:"h,omitempty"` // Heavy
}

// ReplayData contains all data needed to replay a fight. The
// simulation is deterministic by construction, so the encounter name
// and the input stream are enough to reproduce it exactly.
type ReplayData struct {
	Version   string       `json:"version"`
	Encounter string       `json:"encounter"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
