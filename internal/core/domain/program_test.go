package domain

import "testing"

func TestProgram_SetProgress(t *testing.T) {
	p := &Program{}
	p.SetProgress(150)
	if p.Progress != 100 {
		t.Fatalf("progress should clamp to 100, got %d", p.Progress)
	}
	p.SetProgress(-5)
	if p.Progress != 0 {
		t.Fatalf("progress should clamp to 0, got %d", p.Progress)
	}
	p.SetProgress(80)
	if p.Progress != 80 {
		t.Fatalf("in-range progress should pass through, got %d", p.Progress)
	}
}

func TestProgramStatus_Toggle(t *testing.T) {
	if ProgramActive.Toggle() != ProgramInactive {
		t.Fatalf("active should toggle to inactive")
	}
	if ProgramInactive.Toggle() != ProgramActive {
		t.Fatalf("inactive should toggle to active")
	}
}

func TestProgramStatus_Valid(t *testing.T) {
	if !ProgramActive.Valid() || !ProgramInactive.Valid() {
		t.Fatalf("enum members must validate")
	}
	if ProgramStatus("archived").Valid() || ProgramStatus("").Valid() {
		t.Fatalf("non-members must not validate")
	}
}
