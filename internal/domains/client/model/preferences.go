package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

type ContactChannel string

const (
	ContactChannelEmail ContactChannel = "email"
	ContactChannelSMS   ContactChannel = "sms"
	ContactChannelPhone ContactChannel = "phone"
	ContactChannelNone  ContactChannel = "none"
)

var ErrUnknownContactChannel = errors.New("unknown contact channel")

func (c ContactChannel) Valid() bool {
	switch c {
	case "", ContactChannelEmail, ContactChannelSMS, ContactChannelPhone, ContactChannelNone:
		return true
	}

	return false
}

// Preferences holds the client settings the scheduler understands. Keys it does not
// know are kept in Extra and written back untouched.
type Preferences struct {
	PreferredTeamMemberID string                     `json:"preferred_team_member_id,omitempty"`
	PreferredLocationID   string                     `json:"preferred_location_id,omitempty"`
	ContactChannel        ContactChannel             `json:"contact_channel,omitempty"`
	Allergies             []string                   `json:"allergies,omitempty"`
	Notes                 string                     `json:"notes,omitempty"`
	Extra                 map[string]json.RawMessage `json:"-"`
}

// preferences has the same known fields without the custom codec.
type preferences struct {
	PreferredTeamMemberID string         `json:"preferred_team_member_id,omitempty"`
	PreferredLocationID   string         `json:"preferred_location_id,omitempty"`
	ContactChannel        ContactChannel `json:"contact_channel,omitempty"`
	Allergies             []string       `json:"allergies,omitempty"`
	Notes                 string         `json:"notes,omitempty"`
}

var knownPreferenceKeys = []string{
	"preferred_team_member_id",
	"preferred_location_id",
	"contact_channel",
	"allergies",
	"notes",
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(preferences{
		PreferredTeamMemberID: p.PreferredTeamMemberID,
		PreferredLocationID:   p.PreferredLocationID,
		ContactChannel:        p.ContactChannel,
		Allergies:             p.Allergies,
		Notes:                 p.Notes,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if len(p.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(p.Extra)+len(knownPreferenceKeys))
	for key, value := range p.Extra {
		if !slices.Contains(knownPreferenceKeys, key) {
			merged[key] = value
		}
	}

	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return json.Marshal(merged) //nolint:wrapcheck
}

func (p *Preferences) UnmarshalJSON(data []byte) error {
	var known preferences
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	if !known.ContactChannel.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownContactChannel, known.ContactChannel)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	for _, key := range knownPreferenceKeys {
		delete(raw, key)
	}

	*p = Preferences{
		PreferredTeamMemberID: known.PreferredTeamMemberID,
		PreferredLocationID:   known.PreferredLocationID,
		ContactChannel:        known.ContactChannel,
		Allergies:             known.Allergies,
		Notes:                 known.Notes,
	}

	if len(raw) > 0 {
		p.Extra = maps.Clone(raw)
	}

	return nil
}

// Value stores preferences as jsonb.
func (p Preferences) Value() (driver.Value, error) {
	return p.MarshalJSON()
}

func (p *Preferences) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Preferences{}

		return nil
	case []byte:
		return p.UnmarshalJSON(v)
	case string:
		return p.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into preferences", src)
	}
}
