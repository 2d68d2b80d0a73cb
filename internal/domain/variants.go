package domain

import "time"

// EmergencyContact is the nested contact shape required by the program and
// volunteer variants.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

// PaymentRecord tracks a gateway-backed payment attached to a registration.
type PaymentRecord struct {
	AmountMinor int64  `json:"amountMinor"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	OrderID     string `json:"orderId,omitempty"`
	PaymentID   string `json:"paymentId,omitempty"`
	Signature   string `json:"signature,omitempty"`
}

// FamilyMember is one entry in a general membership's household list.
type FamilyMember struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Age          int    `json:"age,omitempty"`
}

// GeneralDetails carries membership-specific fields.
type GeneralDetails struct {
	MembershipTier    string            `json:"membershipTier"`
	FamilyMembers     []FamilyMember    `json:"familyMembers,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Occupation        string            `json:"occupation,omitempty"`
	CountryOfOrigin   string            `json:"countryOfOrigin,omitempty"`
	PreferredLanguage string            `json:"preferredLanguage,omitempty"`
	Payment           *PaymentRecord    `json:"payment,omitempty"`
}

func (GeneralDetails) RegistrationType() RegistrationType { return RegistrationTypeGeneral }

// Participant describes one enrollee in a program registration.
type Participant struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
}

// AttendanceEntry records a single program session attendance mark.
type AttendanceEntry struct {
	Date    time.Time `json:"date"`
	Present bool      `json:"present"`
	Note    string    `json:"note,omitempty"`
}

// ProgramDetails carries program-enrollment fields. EmergencyContact is
// required at creation.
type ProgramDetails struct {
	ProgramID           string            `json:"programId"`
	SessionPreference   string            `json:"sessionPreference,omitempty"`
	Participants        []Participant     `json:"participants,omitempty"`
	EmergencyContact    EmergencyContact  `json:"emergencyContact"`
	MedicalInfo         string            `json:"medicalInfo,omitempty"`
	Attendance          []AttendanceEntry `json:"attendance,omitempty"`
	Completed           bool              `json:"completed"`
	CertificateIssuedAt *time.Time        `json:"certificateIssuedAt,omitempty"`
}

func (ProgramDetails) RegistrationType() RegistrationType { return RegistrationTypeProgram }

// Guest is one additional attendee on an event registration.
type Guest struct {
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
}

// EventCancellation is the event-variant cancellation sub-state, distinct
// from the base lifecycle status.
type EventCancellation struct {
	Cancelled   bool       `json:"cancelled"`
	Reason      string     `json:"reason,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// EventDetails carries event-attendance fields. EventName and EventDate are
// denormalized from the event catalogue at creation time.
type EventDetails struct {
	EventID            string            `json:"eventId"`
	EventName          string            `json:"eventName,omitempty"`
	EventDate          *time.Time        `json:"eventDate,omitempty"`
	Guests             []Guest           `json:"guests,omitempty"`
	TotalAttendees     int               `json:"totalAttendees"`
	DietaryNeeds       string            `json:"dietaryNeeds,omitempty"`
	AccessibilityNeeds string            `json:"accessibilityNeeds,omitempty"`
	Payment            PaymentRecord     `json:"payment"`
	CheckedIn          bool              `json:"checkedIn"`
	CheckedInAt        *time.Time        `json:"checkedInAt,omitempty"`
	Cancellation       EventCancellation `json:"cancellation"`
}

func (EventDetails) RegistrationType() RegistrationType { return RegistrationTypeEvent }

// ServiceType enumerates the welfare service categories.
type ServiceType string

const (
	ServiceFood           ServiceType = "food"
	ServiceHousing        ServiceType = "housing"
	ServiceCounseling     ServiceType = "counseling"
	ServiceTransportation ServiceType = "transportation"
	ServiceFinancial      ServiceType = "financial"
	ServiceOther          ServiceType = "other"
)

// ServiceUrgency enumerates triage levels for service requests.
type ServiceUrgency string

const (
	UrgencyLow      ServiceUrgency = "low"
	UrgencyMedium   ServiceUrgency = "medium"
	UrgencyHigh     ServiceUrgency = "high"
	UrgencyCritical ServiceUrgency = "critical"
)

// DeliveryEntry is one line of a service request's delivery log.
type DeliveryEntry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	StaffID     string    `json:"staffId,omitempty"`
}

// ServiceDetails carries service-request fields. Fulfilled is tracked
// separately from the base status so a request can be approved and later
// marked delivered without leaving the approved lifecycle state early.
type ServiceDetails struct {
	ServiceType          ServiceType     `json:"serviceType"`
	Urgency              ServiceUrgency  `json:"urgency"`
	RequestTitle         string          `json:"requestTitle"`
	Description          string          `json:"description"`
	SchedulingPreference string          `json:"schedulingPreference,omitempty"`
	HouseholdMembers     []FamilyMember  `json:"householdMembers,omitempty"`
	IncomeVerified       bool            `json:"incomeVerified"`
	AssignedTo           string          `json:"assignedTo,omitempty"`
	DeliveryLog          []DeliveryEntry `json:"deliveryLog,omitempty"`
	FollowUpNotes        string          `json:"followUpNotes,omitempty"`
	Fulfilled            bool            `json:"fulfilled"`
}

func (ServiceDetails) RegistrationType() RegistrationType { return RegistrationTypeService }

// BackgroundCheckState enumerates volunteer vetting progress.
type BackgroundCheckState string

const (
	BackgroundCheckNotStarted BackgroundCheckState = "not_started"
	BackgroundCheckPending    BackgroundCheckState = "pending"
	BackgroundCheckCleared    BackgroundCheckState = "cleared"
	BackgroundCheckFlagged    BackgroundCheckState = "flagged"
)

// Availability describes when a volunteer can serve.
type Availability struct {
	Days  []string `json:"days,omitempty"`
	Times []string `json:"times,omitempty"`
}

// Reference is a personal reference supplied by a volunteer applicant.
type Reference struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// AssignmentEntry records a volunteer placement.
type AssignmentEntry struct {
	Role       string     `json:"role"`
	AssignedAt time.Time  `json:"assignedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
}

// RecognitionEntry records an award or acknowledgement.
type RecognitionEntry struct {
	Title     string    `json:"title"`
	AwardedAt time.Time `json:"awardedAt"`
}

// VolunteerDetails carries volunteer-application fields. EmergencyContact
// is required at creation. The same email may apply more than once; no
// uniqueness is enforced on volunteer applications.
type VolunteerDetails struct {
	VolunteerType        string               `json:"volunteerType"`
	Availability         Availability         `json:"availability"`
	Skills               []string             `json:"skills,omitempty"`
	Interests            []string             `json:"interests,omitempty"`
	BackgroundCheck      BackgroundCheckState `json:"backgroundCheck"`
	EmergencyContact     EmergencyContact     `json:"emergencyContact"`
	References           []Reference          `json:"references,omitempty"`
	OrientationCompleted bool                 `json:"orientationCompleted"`
	TrainingCompleted    bool                 `json:"trainingCompleted"`
	Assignments          []AssignmentEntry    `json:"assignments,omitempty"`
	Recognitions         []RecognitionEntry   `json:"recognitions,omitempty"`
}

func (VolunteerDetails) RegistrationType() RegistrationType { return RegistrationTypeVolunteer }
