package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestListing_IsActive(t *testing.T) {
	t.Parallel()

	l := Listing{Status: ListingStatusActive}
	if !l.IsActive() {
		t.Error("active listing reported inactive")
	}
	l.Status = ListingStatusInactive
	if l.IsActive() {
		t.Error("inactive listing reported active")
	}
}

func TestListing_IsOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	l := Listing{UserID: owner}
	if !l.IsOwnedBy(owner) {
		t.Error("owner not recognised")
	}
	if l.IsOwnedBy(uuid.New()) {
		t.Error("stranger recognised as owner")
	}
}

func TestProfile_Public(t *testing.T) {
	t.Parallel()

	ntn := "1234567-8"
	p := Profile{
		ID:              uuid.New(),
		Email:           "seller@example.com",
		FullName:        "Ayesha Khan",
		CNICNumber:      "42101-1234567-1",
		BusinessName:    "Khan Textiles",
		Phone:           "+923001234567",
		NTNNumber:       &ntn,
		ReputationScore: 4.5,
	}

	pub := p.Public()
	if pub.ID != p.ID || pub.BusinessName != "Khan Textiles" || pub.ReputationScore != 4.5 {
		t.Errorf("unexpected public profile: %+v", pub)
	}
}
