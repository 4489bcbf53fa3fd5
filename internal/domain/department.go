package domain

import "time"

// Department is the tenancy boundary: every user, provider, board and
// file belongs to exactly one. Members join with InviteToken; knowing
// AdminInviteToken additionally grants the admin role.
type Department struct {
	Id               DepartmentId
	Name             string
	InviteToken      string
	AdminInviteToken string
	CreatedAt        time.Time
}
