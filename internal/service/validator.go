// Package service implements business logic and orchestration between HTTP
// handlers and the repository layer.
package service

import (
	"strconv"
	"strings"

	"communityserver/internal/domain"
)

// variantRules maps each discriminator to the validator for its payload.
// Each validator collects every failure instead of stopping at the first so
// the client sees all problems in one round trip.
var variantRules = map[domain.RegistrationType]func(domain.RegistrationDetails) []domain.FieldError{
	domain.RegistrationTypeGeneral:   validateGeneral,
	domain.RegistrationTypeProgram:   validateProgram,
	domain.RegistrationTypeEvent:     validateEvent,
	domain.RegistrationTypeService:   validateService,
	domain.RegistrationTypeVolunteer: validateVolunteer,
}

// ValidateVariant runs the rules registered for the given discriminator.
// The bool reports whether the discriminator is known.
func ValidateVariant(t domain.RegistrationType, details domain.RegistrationDetails) ([]domain.FieldError, bool) {
	rule, ok := variantRules[t]
	if !ok {
		return nil, false
	}
	if details == nil {
		return []domain.FieldError{{Field: "details", Message: "variant fields are required"}}, true
	}
	if details.RegistrationType() != t {
		return []domain.FieldError{{Field: "registrationType", Message: "variant fields do not match registration type"}}, true
	}
	return rule(details), true
}

func validateBase(in *CreateRegistrationInput) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	}
	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !isValidEmail(email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "not a valid email address"})
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	}
	return errs
}

func validateGeneral(d domain.RegistrationDetails) []domain.FieldError {
	details := d.(domain.GeneralDetails)
	var errs []domain.FieldError
	if strings.TrimSpace(details.MembershipTier) == "" {
		errs = append(errs, domain.FieldError{Field: "membershipTier", Message: "required"})
	}
	for i, member := range details.FamilyMembers {
		if strings.TrimSpace(member.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fieldAt("familyMembers", i, "name"), Message: "required"})
		}
	}
	return errs
}

func validateProgram(d domain.RegistrationDetails) []domain.FieldError {
	details := d.(domain.ProgramDetails)
	var errs []domain.FieldError
	if strings.TrimSpace(details.ProgramID) == "" {
		errs = append(errs, domain.FieldError{Field: "programId", Message: "required"})
	}
	errs = append(errs, validateEmergencyContact(details.EmergencyContact)...)
	for i, p := range details.Participants {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fieldAt("participants", i, "name"), Message: "required"})
		}
	}
	return errs
}

func validateEvent(d domain.RegistrationDetails) []domain.FieldError {
	details := d.(domain.EventDetails)
	var errs []domain.FieldError
	if strings.TrimSpace(details.EventID) == "" {
		errs = append(errs, domain.FieldError{Field: "eventId", Message: "required"})
	}
	if details.TotalAttendees < 1 {
		errs = append(errs, domain.FieldError{Field: "totalAttendees", Message: "must be at least 1"})
	}
	if len(details.Guests) > details.TotalAttendees {
		errs = append(errs, domain.FieldError{Field: "guests", Message: "cannot exceed totalAttendees"})
	}
	for i, g := range details.Guests {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fieldAt("guests", i, "name"), Message: "required"})
		}
	}
	return errs
}

var serviceTypes = map[domain.ServiceType]struct{}{
	domain.ServiceFood: {}, domain.ServiceHousing: {}, domain.ServiceCounseling: {},
	domain.ServiceTransportation: {}, domain.ServiceFinancial: {}, domain.ServiceOther: {},
}

var serviceUrgencies = map[domain.ServiceUrgency]struct{}{
	domain.UrgencyLow: {}, domain.UrgencyMedium: {}, domain.UrgencyHigh: {}, domain.UrgencyCritical: {},
}

func validateService(d domain.RegistrationDetails) []domain.FieldError {
	details := d.(domain.ServiceDetails)
	var errs []domain.FieldError
	if _, ok := serviceTypes[details.ServiceType]; !ok {
		errs = append(errs, domain.FieldError{Field: "serviceType", Message: "must be one of food, housing, counseling, transportation, financial, other"})
	}
	if details.Urgency != "" {
		if _, ok := serviceUrgencies[details.Urgency]; !ok {
			errs = append(errs, domain.FieldError{Field: "urgency", Message: "must be one of low, medium, high, critical"})
		}
	}
	if strings.TrimSpace(details.RequestTitle) == "" {
		errs = append(errs, domain.FieldError{Field: "requestTitle", Message: "required"})
	}
	if strings.TrimSpace(details.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	return errs
}

var backgroundCheckStates = map[domain.BackgroundCheckState]struct{}{
	domain.BackgroundCheckNotStarted: {}, domain.BackgroundCheckPending: {},
	domain.BackgroundCheckCleared: {}, domain.BackgroundCheckFlagged: {},
}

func validateVolunteer(d domain.RegistrationDetails) []domain.FieldError {
	details := d.(domain.VolunteerDetails)
	var errs []domain.FieldError
	if strings.TrimSpace(details.VolunteerType) == "" {
		errs = append(errs, domain.FieldError{Field: "volunteerType", Message: "required"})
	}
	errs = append(errs, validateEmergencyContact(details.EmergencyContact)...)
	if details.BackgroundCheck != "" {
		if _, ok := backgroundCheckStates[details.BackgroundCheck]; !ok {
			errs = append(errs, domain.FieldError{Field: "backgroundCheck", Message: "unknown state"})
		}
	}
	for i, ref := range details.References {
		if strings.TrimSpace(ref.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fieldAt("references", i, "name"), Message: "required"})
		}
	}
	return errs
}

func validateEmergencyContact(c domain.EmergencyContact) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "emergencyContact.name", Message: "required"})
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, domain.FieldError{Field: "emergencyContact.phone", Message: "required"})
	}
	return errs
}

func fieldAt(list string, i int, field string) string {
	return list + "[" + strconv.Itoa(i) + "]." + field
}

// isValidEmail does a basic structural check.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
