package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
	RoleAdmin       Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Requester 已認證的請求者身份，由上游認證層提供
type Requester struct {
	ID   uuid.UUID
	Role Role
}

// CanManage 是否可以操作 ownerID 擁有的資源（本人或管理員）
func (r Requester) CanManage(ownerID uuid.UUID) bool {
	return r.ID == ownerID || r.Role.IsAdmin()
}

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
