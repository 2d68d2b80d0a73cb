package service

import (
	"testing"

	"communityserver/internal/domain"
)

func fieldNames(errs []domain.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateVolunteerRequiresEmergencyContact(t *testing.T) {
	details := domain.VolunteerDetails{VolunteerType: "weekend", EmergencyContact: domain.EmergencyContact{Name: "B"}}
	errs, known := ValidateVariant(domain.RegistrationTypeVolunteer, details)
	if !known {
		t.Fatal("volunteer should be a known variant")
	}
	fields := fieldNames(errs)
	if _, ok := fields["emergencyContact.phone"]; !ok {
		t.Fatalf("expected emergencyContact.phone error, got %v", fields)
	}
	if _, ok := fields["emergencyContact.name"]; ok {
		t.Fatalf("name was provided yet flagged: %v", fields)
	}
}

func TestValidateVariantRejectsMismatchedPayload(t *testing.T) {
	errs, known := ValidateVariant(domain.RegistrationTypeProgram, domain.GeneralDetails{MembershipTier: "x"})
	if !known {
		t.Fatal("program should be a known variant")
	}
	if len(errs) != 1 || errs[0].Field != "registrationType" {
		t.Fatalf("expected registrationType mismatch error, got %v", errs)
	}
}

func TestValidateVariantUnknownDiscriminator(t *testing.T) {
	if _, known := ValidateVariant(domain.RegistrationType("membership"), nil); known {
		t.Fatal("unknown discriminator reported as known")
	}
}

func TestValidateEventGuards(t *testing.T) {
	details := domain.EventDetails{
		TotalAttendees: 1,
		Guests:         []domain.Guest{{Name: "A"}, {Name: ""}},
	}
	errs, _ := ValidateVariant(domain.RegistrationTypeEvent, details)
	fields := fieldNames(errs)
	for _, want := range []string{"eventId", "guests", "guests[1].name"} {
		if _, ok := fields[want]; !ok {
			t.Fatalf("expected %q error, got %v", want, fields)
		}
	}
}

func TestValidateServiceEnums(t *testing.T) {
	details := domain.ServiceDetails{
		ServiceType:  "plumbing",
		Urgency:      "immediate",
		RequestTitle: "Leak",
		Description:  "kitchen sink",
	}
	errs, _ := ValidateVariant(domain.RegistrationTypeService, details)
	fields := fieldNames(errs)
	if _, ok := fields["serviceType"]; !ok {
		t.Fatalf("expected serviceType error, got %v", fields)
	}
	if _, ok := fields["urgency"]; !ok {
		t.Fatalf("expected urgency error, got %v", fields)
	}

	valid := domain.ServiceDetails{ServiceType: domain.ServiceHousing, RequestTitle: "Rent help", Description: "one month"}
	if errs, _ := ValidateVariant(domain.RegistrationTypeService, valid); len(errs) != 0 {
		t.Fatalf("valid service request flagged: %v", errs)
	}
}

func TestValidateEmailStructure(t *testing.T) {
	for _, bad := range []string{"plain", "a@b", "a@@b.com", "@b.com"} {
		if isValidEmail(bad) {
			t.Fatalf("accepted invalid email %q", bad)
		}
	}
	for _, good := range []string{"a@b.com", "first.last@sub.domain.org"} {
		if !isValidEmail(good) {
			t.Fatalf("rejected valid email %q", good)
		}
	}
}
