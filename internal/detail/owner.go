package detail

import (
	"metadata-catalog/internal/types"
)

// Owner is either a UserOwner or a TeamOwner. A suite without an owner has a
// nil Owner.
type Owner interface {
	Reference() types.EntityReference
	sealed()
}

// UserOwner is a suite owned by a single user.
type UserOwner struct {
	Ref types.EntityReference
}

// TeamOwner is a suite owned by a team.
type TeamOwner struct {
	Ref types.EntityReference
}

func (o UserOwner) Reference() types.EntityReference { return o.Ref }
func (o TeamOwner) Reference() types.EntityReference { return o.Ref }

func (UserOwner) sealed() {}
func (TeamOwner) sealed() {}

// OwnerOf tags ref by its type. Unknown types and nil references yield nil.
func OwnerOf(ref *types.EntityReference) Owner {
	if ref == nil {
		return nil
	}
	switch ref.Type {
	case types.EntityTypeUser:
		return UserOwner{Ref: *ref}
	case types.EntityTypeTeam:
		return TeamOwner{Ref: *ref}
	}
	return nil
}

// TeamDetailsPath is the settings page of a team.
func TeamDetailsPath(name string) string {
	return "/settings/members/teams/" + name
}

// ExtraInfo is one labelled value shown under the suite title.
type ExtraInfo struct {
	Key             string
	Value           string
	PlaceholderText string
	IsLink          bool
	OpenInNewTab    bool
	ProfileName     string
}

// OwnerInfo derives the "Owner" extra info entry.
func OwnerInfo(owner Owner) ExtraInfo {
	info := ExtraInfo{Key: "Owner"}

	switch o := owner.(type) {
	case nil:
	case TeamOwner:
		info.Value = TeamDetailsPath(o.Ref.Name)
		info.IsLink = true
		info.PlaceholderText = placeholder(o.Ref)
	case UserOwner:
		info.Value = entityName(o.Ref)
		info.ProfileName = o.Ref.Name
		info.PlaceholderText = placeholder(o.Ref)
	}

	return info
}

func entityName(ref types.EntityReference) string {
	if ref.DisplayName != "" {
		return ref.DisplayName
	}
	return ref.Name
}

func placeholder(ref types.EntityReference) string {
	name := entityName(ref)
	if name != "" && ref.Deleted {
		return name + " (Deactivated)"
	}
	return name
}
