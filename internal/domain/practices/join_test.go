package practices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveResponsesKnownMembers(t *testing.T) {
	respondedAt := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	members := IndexMembers([]MemberSummary{
		{ID: "nick", Name: "Nick", Instrument: "Drums", Email: "nick@band.com"},
		{ID: "keelan", Name: "Keelan", Instrument: "Bass", Email: "keelan@band.com"},
	})

	resolved := ResolveResponses([]MemberResponse{
		{MemberID: "keelan", Status: StatusPending, RespondedAt: respondedAt},
		{MemberID: "nick", Status: StatusConfirmed, Note: "bringing sticks", RespondedAt: respondedAt},
	}, members)

	require.Len(t, resolved, 2)
	assert.Equal(t, "Keelan", resolved[0].Member.Name)
	assert.Equal(t, "Bass", resolved[0].Member.Instrument)
	assert.Equal(t, StatusPending, resolved[0].Status)
	assert.Equal(t, "Nick", resolved[1].Member.Name)
	assert.Equal(t, "bringing sticks", resolved[1].Note)
	assert.Equal(t, respondedAt, resolved[1].RespondedAt)
	assert.False(t, resolved[1].Member.Unknown)
}

func TestResolveResponsesDanglingMember(t *testing.T) {
	members := IndexMembers([]MemberSummary{{ID: "nick", Name: "Nick", Instrument: "Drums"}})

	resolved := ResolveResponses([]MemberResponse{
		{MemberID: "nick", Status: StatusConfirmed},
		{MemberID: "gone", Status: StatusDeclined},
	}, members)

	require.Len(t, resolved, 2)
	assert.False(t, resolved[0].Member.Unknown)

	ghost := resolved[1]
	assert.True(t, ghost.Member.Unknown)
	assert.Equal(t, "gone", ghost.Member.ID)
	assert.Equal(t, UnknownMemberName, ghost.Member.Name)
	assert.Empty(t, ghost.Member.Instrument)
	assert.Equal(t, StatusDeclined, ghost.Status)
}

func TestResolveResponsesEmpty(t *testing.T) {
	resolved := ResolveResponses(nil, nil)
	require.NotNil(t, resolved)
	assert.Empty(t, resolved)
}

func TestReferencedMemberIDsDeduplicates(t *testing.T) {
	ids := referencedMemberIDs([]Practice{
		{MemberResponses: MemberResponses{{MemberID: "a"}, {MemberID: "b"}}},
		{MemberResponses: MemberResponses{{MemberID: "b"}, {MemberID: "c"}}},
	})
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestParseResponseStatus(t *testing.T) {
	cases := map[string]ResponseStatus{
		"":          StatusPending,
		"confirmed": StatusConfirmed,
		" Maybe ":   StatusMaybe,
		"DECLINED":  StatusDeclined,
		"pending":   StatusPending,
	}
	for input, want := range cases {
		got, err := ParseResponseStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseResponseStatus("yes")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMemberResponsesScanValue(t *testing.T) {
	original := MemberResponses{{
		MemberID:    "nick",
		Status:      StatusMaybe,
		RespondedAt: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
	}}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Contains(t, value, `"member":"nick"`)
	assert.Contains(t, value, `"responseDate":"2026-05-01T18:00:00Z"`)

	var scanned MemberResponses
	require.NoError(t, scanned.Scan([]byte(value.(string))))
	assert.Equal(t, original, scanned)

	var empty MemberResponses
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)

	assert.Error(t, empty.Scan(42))
}

func TestMemberResponsesNilValue(t *testing.T) {
	var responses MemberResponses
	value, err := responses.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}
