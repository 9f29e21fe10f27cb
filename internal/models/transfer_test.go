package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{input: "phone-to-pc", want: DirectionPhoneToPC},
		{input: "phone_to_pc", want: DirectionPhoneToPC},
		{input: " PC-to-Phone ", want: DirectionPCToPhone},
		{input: "pull", want: DirectionPhoneToPC},
		{input: "push", want: DirectionPCToPhone},
		{input: "sideways", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid direction")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScope(t *testing.T) {
	for _, in := range []string{"userdata", "user-data", "USER_DATA"} {
		got, err := ParseScope(in)
		require.NoError(t, err)
		assert.Equal(t, ScopeUserData, got, in)
	}

	got, err := ParseScope("all-files")
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, got)

	_, err = ParseScope("levels")
	assert.ErrorContains(t, err, "invalid scope")
}

func TestDirection_IsPull(t *testing.T) {
	assert.True(t, DirectionPhoneToPC.IsPull())
	assert.False(t, DirectionPCToPhone.IsPull())
	assert.False(t, Direction("").Valid())
}

func TestTransferRequest_Validate(t *testing.T) {
	valid := TransferRequest{
		Direction:  DirectionPCToPhone,
		Scope:      ScopeAll,
		LocalRoot:  "/home/alice/GeometryDash",
		RemoteRoot: "/storage/emulated/0/save",
	}
	assert.NoError(t, valid.Validate())

	noRemote := valid
	noRemote.RemoteRoot = ""
	assert.ErrorContains(t, noRemote.Validate(), "remote root is required")

	badScope := valid
	badScope.Scope = "levels"
	assert.ErrorContains(t, badScope.Validate(), "invalid scope")

	badDirection := valid
	badDirection.Direction = "up"
	assert.ErrorContains(t, badDirection.Validate(), "invalid direction")
}

func TestTransferOutcome(t *testing.T) {
	var o TransferOutcome

	o.RecordSuccess()
	o.RecordSkip()
	o.Finalize()
	assert.True(t, o.OverallSuccess)
	assert.Equal(t, 1, o.Attempted)
	assert.Equal(t, 1, o.Skipped)

	o.RecordFailure(FileFailure{Entry: FileEntry{Name: "CCGameManager.dat"}, Detail: "device offline", ExitCode: 1})
	o.Finalize()

	assert.False(t, o.OverallSuccess)
	assert.Equal(t, 2, o.Attempted)
	assert.Equal(t, 1, o.Succeeded)
	require.Len(t, o.Failed, 1)
	assert.Equal(t, "CCGameManager.dat", o.Failed[0].Entry.Name)
}

func TestTransferOutcome_EmptyIsSuccess(t *testing.T) {
	var o TransferOutcome
	o.Finalize()

	assert.True(t, o.OverallSuccess)
	assert.Zero(t, o.Attempted)
}
