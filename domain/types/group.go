package types

// GroupPermission states who may perform a guarded group action.
type GroupPermission string

const (
	PermissionEveryMember GroupPermission = "every-member"
	PermissionOnlyAdmins  GroupPermission = "only-admins"
)

// GroupPermissions holds the per-action permission settings of a group.
type GroupPermissions struct {
	AddMembers GroupPermission
	EditGroup  GroupPermission
}

// Group is a group conversation as last fetched from the relay. The library
// keeps no group state of its own; every read re-fetches.
type Group struct {
	ID          GroupID
	Name        string
	Description string
	Members     []Recipient
	Admins      []Recipient
	Blocked     bool
	Permissions GroupPermissions
	// InviteLink is empty when group links are disabled.
	InviteLink string
}

// GroupPatch carries the fields of an update; nil fields are left unchanged.
type GroupPatch struct {
	Name        *string
	Description *string
	// Avatar replaces the group avatar when non-nil.
	Avatar []byte
}

// IsZero reports whether the patch changes nothing.
func (p GroupPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Avatar == nil
}
