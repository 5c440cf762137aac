package handler

import "github.com/vitality-edu/wellness-hub/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth / session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role"             validate:"required,oneof=student admin"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

type sessionResponse struct {
	User *domain.Identity `json:"user"`
}

type enrollmentRequest struct {
	ProgramID string `json:"program_id" validate:"required"`
	Action    string `json:"action"     validate:"required,oneof=add remove"`
}

// --- Catalog: resources ---

type resourceRequest struct {
	ID          string `json:"id"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"    validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	ReadTime    string `json:"time"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

func (r resourceRequest) toDomain() *domain.Resource {
	return &domain.Resource{
		ID:          r.ID,
		Emoji:       r.Emoji,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.Category(r.Category),
		ReadTime:    r.ReadTime,
		Author:      r.Author,
		Date:        r.Date,
		Status:      domain.ResourceStatus(r.Status),
	}
}

type resourceListResponse struct {
	Data []*domain.Resource `json:"data"`
}

// --- Catalog: programs ---

type programRequest struct {
	ID            string `json:"id"`
	Emoji         string `json:"emoji"`
	Title         string `json:"title"    validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"required"`
	Duration      string `json:"duration"`
	Sessions      int    `json:"sessions"`
	Level         string `json:"level"`
	EnrolledCount int    `json:"enrolled"`
	Color         string `json:"color"`
	ColorSolid    string `json:"color_solid"`
	Status        string `json:"status"`
}

func (r programRequest) toDomain() *domain.Program {
	return &domain.Program{
		ID:            r.ID,
		Emoji:         r.Emoji,
		Title:         r.Title,
		Description:   r.Description,
		Category:      domain.Category(r.Category),
		Duration:      r.Duration,
		Sessions:      r.Sessions,
		Level:         r.Level,
		EnrolledCount: r.EnrolledCount,
		Color:         r.Color,
		ColorSolid:    r.ColorSolid,
		Status:        domain.ProgramStatus(r.Status),
	}
}

type programListResponse struct {
	Data []*domain.Program `json:"data"`
}

type progressRequest struct {
	Progress int `json:"progress"`
}

// --- Insights ---

type announcementRequest struct {
	Title    string `json:"title"    validate:"required"`
	Body     string `json:"body"     validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type announcementListResponse struct {
	Data []*domain.Announcement `json:"data"`
}
