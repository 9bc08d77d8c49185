package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/internal/domains/client/model"
)

func TestPreferences_RoundTripKeepsUnknownKeys(t *testing.T) {
	raw := `{"contact_channel":"sms","allergies":["latex"],"favourite_drink":"tea","loyalty":{"tier":2}}`

	var prefs model.Preferences
	require.NoError(t, json.Unmarshal([]byte(raw), &prefs))

	assert.Equal(t, model.ContactChannelSMS, prefs.ContactChannel)
	assert.Equal(t, []string{"latex"}, prefs.Allergies)
	assert.Len(t, prefs.Extra, 2)
	assert.JSONEq(t, `"tea"`, string(prefs.Extra["favourite_drink"]))

	out, err := json.Marshal(prefs)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestPreferences_KnownFieldsWinOverExtra(t *testing.T) {
	prefs := model.Preferences{
		Notes: "prefers mornings",
		Extra: map[string]json.RawMessage{"notes": json.RawMessage(`"stale"`), "x": json.RawMessage(`1`)},
	}

	out, err := json.Marshal(prefs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":"prefers mornings","x":1}`, string(out))
}

func TestPreferences_RejectsUnknownChannel(t *testing.T) {
	var prefs model.Preferences

	err := json.Unmarshal([]byte(`{"contact_channel":"pigeon"}`), &prefs)
	assert.ErrorIs(t, err, model.ErrUnknownContactChannel)
}

func TestPreferences_Scan(t *testing.T) {
	var prefs model.Preferences

	require.NoError(t, prefs.Scan([]byte(`{"preferred_team_member_id":"tm-1"}`)))
	assert.Equal(t, "tm-1", prefs.PreferredTeamMemberID)
	assert.Nil(t, prefs.Extra)

	require.NoError(t, prefs.Scan(nil))
	assert.Equal(t, model.Preferences{}, prefs)

	assert.Error(t, prefs.Scan(42))

	value, err := model.Preferences{Notes: "n"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":"n"}`, string(value.([]byte)))
}
