package domain

import "strings"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Identity models a portal account. The same record doubles as the credential
// table entry (with PasswordHash set) and as the active session record (with
// PasswordHash stripped). WellnessScore and Enrolled are tracked for students
// only; enrollment is a set of program identifiers, cross-referenced by id.
type Identity struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"-"`
	Role          string   `json:"role"`
	Avatar        string   `json:"avatar"`
	JoinDate      string   `json:"join_date"`
	WellnessScore int      `json:"wellness_score,omitempty"`
	Enrolled      []string `json:"enrolled,omitempty"`
}

// ValidRole reports whether role is one of the two portal roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}

// IsEnrolled reports whether the identity has joined the given program.
func (i *Identity) IsEnrolled(programID string) bool {
	for _, id := range i.Enrolled {
		if id == programID {
			return true
		}
	}
	return false
}

// Enroll adds programID to the enrollment set. Adding an existing member is a no-op.
func (i *Identity) Enroll(programID string) {
	if i.IsEnrolled(programID) {
		return
	}
	i.Enrolled = append(i.Enrolled, programID)
}

// Unenroll removes programID from the enrollment set. Absent ids are a no-op.
func (i *Identity) Unenroll(programID string) {
	for idx, id := range i.Enrolled {
		if id == programID {
			i.Enrolled = append(i.Enrolled[:idx], i.Enrolled[idx+1:]...)
			return
		}
	}
}

// Clone returns a deep copy, so callers can hand out identities without
// exposing shared mutable state.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	if i.Enrolled != nil {
		// Keep an empty set distinct from an absent one.
		clone.Enrolled = make([]string, len(i.Enrolled))
		copy(clone.Enrolled, i.Enrolled)
	}
	return &clone
}

// Sanitized returns a copy with the password hash stripped. Only sanitized
// identities may become the active session record or leave the service layer.
func (i *Identity) Sanitized() *Identity {
	clone := i.Clone()
	clone.PasswordHash = ""
	return clone
}

// AvatarInitials derives the default avatar token from a display name: the
// first letter of up to two space-separated words, upper-cased.
func AvatarInitials(name string) string {
	var b strings.Builder
	for idx, word := range strings.Fields(name) {
		if idx == 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return b.String()
}
