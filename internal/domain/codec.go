package domain

import (
	"encoding/json"
	"fmt"
)

// DecodeDetails unmarshals a variant payload into the concrete type
// selected by the discriminator. Used both for request bodies and for the
// jsonb details column.
func DecodeDetails(t RegistrationType, raw []byte) (RegistrationDetails, error) {
	if len(raw) == 0 {
		raw = []byte(`{}`)
	}
	switch t {
	case RegistrationTypeGeneral:
		var d GeneralDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode general details: %w", err)
		}
		return d, nil
	case RegistrationTypeProgram:
		var d ProgramDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode program details: %w", err)
		}
		return d, nil
	case RegistrationTypeEvent:
		var d EventDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode event details: %w", err)
		}
		return d, nil
	case RegistrationTypeService:
		var d ServiceDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode service details: %w", err)
		}
		return d, nil
	case RegistrationTypeVolunteer:
		var d VolunteerDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode volunteer details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, t)
	}
}
