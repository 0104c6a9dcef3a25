package models

// Role is a resident or staff role within a condominium.
type Role string

const (
	RoleMorador  Role = "morador"
	RolePorteiro Role = "porteiro"
	RoleZelador  Role = "zelador"
	RoleSindico  Role = "sindico"
)

// IsManager reports whether the role may manage areas and act on other
// residents' reservations (approve, reject, cancel).
func (r Role) IsManager() bool {
	return r == RolePorteiro || r == RoleZelador || r == RoleSindico
}

// ManagerRoles lists the roles notified when a reservation awaits approval.
func ManagerRoles() []Role {
	return []Role{RolePorteiro, RoleZelador, RoleSindico}
}

// Actor is the authenticated identity performing a booking operation.
// User and credential management live outside this service; the actor
// arrives resolved from the bearer token by the auth middleware.
type Actor struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Role          Role   `bson:"role" json:"role"`
	CondominiumID string `bson:"condominiumId" json:"condominiumId"`
	FCMToken      string `bson:"fcmToken,omitempty" json:"-"`
}
