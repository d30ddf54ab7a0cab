package models

import "time"

const PublicRoleType = "public"

// Role is a permission group. The public role is the anonymous-access group
// provisioned at startup.
type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string
	Type      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Permission enables a single action for a role. Actions follow the
// "api::<type>.<type>.<op>" convention, see ContentType.Action.
type Permission struct {
	ID        uint   `gorm:"primaryKey"`
	RoleID    uint   `gorm:"uniqueIndex:idx_role_action"`
	Action    string `gorm:"uniqueIndex:idx_role_action"`
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
