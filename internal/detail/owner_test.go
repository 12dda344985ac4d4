package detail

import (
	"testing"

	"metadata-catalog/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOwnerOf(t *testing.T) {
	user := &types.EntityReference{ID: uuid.New(), Type: types.EntityTypeUser, Name: "alice"}
	team := &types.EntityReference{ID: uuid.New(), Type: types.EntityTypeTeam, Name: "data"}

	assert.Nil(t, OwnerOf(nil))
	assert.Equal(t, UserOwner{Ref: *user}, OwnerOf(user))
	assert.Equal(t, TeamOwner{Ref: *team}, OwnerOf(team))
	assert.Nil(t, OwnerOf(&types.EntityReference{Type: types.EntityTypeTestSuite, Name: "x"}))
	assert.Equal(t, *team, OwnerOf(team).Reference())
}

func TestOwnerInfo(t *testing.T) {
	tests := []struct {
		name  string
		owner Owner
		want  ExtraInfo
	}{
		{
			name:  "no owner",
			owner: nil,
			want:  ExtraInfo{Key: "Owner"},
		},
		{
			name:  "team links to its settings page",
			owner: TeamOwner{Ref: types.EntityReference{Type: types.EntityTypeTeam, Name: "data", DisplayName: "Data Platform"}},
			want: ExtraInfo{
				Key:             "Owner",
				Value:           "/settings/members/teams/data",
				PlaceholderText: "Data Platform",
				IsLink:          true,
			},
		},
		{
			name:  "user without display name",
			owner: UserOwner{Ref: types.EntityReference{Type: types.EntityTypeUser, Name: "alice"}},
			want: ExtraInfo{
				Key:             "Owner",
				Value:           "alice",
				PlaceholderText: "alice",
				ProfileName:     "alice",
			},
		},
		{
			name:  "deactivated user",
			owner: UserOwner{Ref: types.EntityReference{Type: types.EntityTypeUser, Name: "bob", DisplayName: "Bob", Deleted: true}},
			want: ExtraInfo{
				Key:             "Owner",
				Value:           "Bob",
				PlaceholderText: "Bob (Deactivated)",
				ProfileName:     "bob",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerInfo(tt.owner))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestNotificationString(t *testing.T) {
	n := newNotification(KindFetchTestCases, nil)
	assert.Equal(t, "Error while fetching test cases!", n.String())
}
