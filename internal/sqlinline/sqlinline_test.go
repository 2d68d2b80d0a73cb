package sqlinline

import (
	"regexp"
	"strings"
	"testing"
)

var markerRe = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var allQueries = map[string]string{
	"QInsertDonationIdempotent":      QInsertDonationIdempotent,
	"QSelectDonationByID":            QSelectDonationByID,
	"QFinalizeDonation":              QFinalizeDonation,
	"QRefundDonation":                QRefundDonation,
	"QListDonations":                 QListDonations,
	"QInsertEvent":                   QInsertEvent,
	"QSelectEventByID":               QSelectEventByID,
	"QListEvents":                    QListEvents,
	"QInsertRegistration":            QInsertRegistration,
	"QSelectRegistrationByID":        QSelectRegistrationByID,
	"QAppendRegistrationStatus":      QAppendRegistrationStatus,
	"QAppendRegistrationStatusWhere": QAppendRegistrationStatusWhere,
	"QListRegistrations":             QListRegistrations,
	"QRegistrationCountsByType":      QRegistrationCountsByType,
	"QRegistrationCountsByStatus":    QRegistrationCountsByStatus,
	"QDonationTotalsByFund":          QDonationTotalsByFund,
	"QSelectUserByID":                QSelectUserByID,
	"QSelectUserByEmail":             QSelectUserByEmail,
}

func TestEveryQueryCarriesMarker(t *testing.T) {
	seen := map[string]string{}
	for name, query := range allQueries {
		lines := strings.Split(strings.TrimSpace(query), "\n")
		marker := strings.TrimSpace(lines[0])
		if !markerRe.MatchString(marker) {
			t.Errorf("%s: first line is not a valid marker: %q", name, marker)
			continue
		}
		if prev, ok := seen[marker]; ok {
			t.Errorf("%s: marker reused from %s", name, prev)
		}
		seen[marker] = name
	}
}

func TestQueriesTerminate(t *testing.T) {
	for name, query := range allQueries {
		if !strings.HasSuffix(strings.TrimSpace(query), ";") {
			t.Errorf("%s: statement does not end with a semicolon", name)
		}
	}
}
