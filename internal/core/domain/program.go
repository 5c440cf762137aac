package domain

// ProgramStatus is the lifecycle flag on an enrollable program.
type ProgramStatus string

const (
	ProgramActive   ProgramStatus = "active"
	ProgramInactive ProgramStatus = "inactive"
)

// Valid reports whether s is a member of the status enum.
func (s ProgramStatus) Valid() bool {
	return s == ProgramActive || s == ProgramInactive
}

// Toggle flips between active and inactive.
func (s ProgramStatus) Toggle() ProgramStatus {
	if s == ProgramActive {
		return ProgramInactive
	}
	return ProgramActive
}

// Program is an enrollable wellness offering. EnrolledCount is a static
// display counter carried on the record; live membership is tracked on the
// Identity side as a set of program ids.
type Program struct {
	ID            string        `json:"id"`
	Emoji         string        `json:"emoji,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      Category      `json:"category"`
	Duration      string        `json:"duration"`
	Sessions      int           `json:"sessions"`
	Level         string        `json:"level"`
	EnrolledCount int           `json:"enrolled"`
	Progress      int           `json:"progress"`
	Color         string        `json:"color"`
	ColorSolid    string        `json:"color_solid"`
	Status        ProgramStatus `json:"status"`
}

// SetProgress stores a per-student completion percentage, clamped to [0,100].
func (p *Program) SetProgress(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.Progress = pct
}
