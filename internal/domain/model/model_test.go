package model

import "testing"

func TestPayoutStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   PayoutStatus
		value string
	}{
		{"pending", PayoutStatusPending, "pending"},
		{"approved", PayoutStatusApproved, "approved"},
		{"denied", PayoutStatusDenied, "denied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestAwardValues(t *testing.T) {
	cases := []struct {
		reason AwardReason
		value  int64
	}{
		{ReasonPostCreated, 10},
		{ReasonComment, 5},
		{ReasonLike, 2},
		{ReasonFollow, 3},
		{ReasonStreamStart, 15},
		{ReasonStreamMinute, 1},
		{ReasonDailyLogin, 5},
		{ReasonShare, 3},
	}

	for _, tc := range cases {
		v, ok := AwardValue(tc.reason)
		if !ok {
			t.Fatalf("expected %s to be awardable", tc.reason)
		}
		if v != tc.value {
			t.Fatalf("expected %s to pay %d, got %d", tc.reason, tc.value, v)
		}
	}
}

func TestAwardValueRejectsPayoutReasons(t *testing.T) {
	for _, reason := range []AwardReason{ReasonPayoutRequest, ReasonPayoutRefund, AwardReason("bogus")} {
		if _, ok := AwardValue(reason); ok {
			t.Fatalf("expected %s to not be directly awardable", reason)
		}
	}
}

func TestEarningsUSD(t *testing.T) {
	if got := EarningsUSD(4500); got != 45.0 {
		t.Fatalf("expected 4500 points to equal $45, got %f", got)
	}
	if got := EarningsUSD(0); got != 0 {
		t.Fatalf("expected zero points to equal $0, got %f", got)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleListener, RoleCreator, RoleBrand, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected role %s to be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Fatal("unexpected valid role")
	}
}
