package entities

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_Valid(t *testing.T) {
	for _, s := range []RequestStatus{StatusNew, StatusInProgress, StatusRepaired, StatusScrap, StatusClosed} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, RequestStatus("done").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestType_Valid(t *testing.T) {
	assert.True(t, TypeCorrective.Valid())
	assert.True(t, TypePreventive.Valid())
	assert.False(t, RequestType("emergency").Valid())
}

func TestMaintenanceRequest_Overdue(t *testing.T) {
	now := time.Now()
	past := null.TimeFrom(now.Add(-24 * time.Hour))
	future := null.TimeFrom(now.Add(24 * time.Hour))

	cases := []struct {
		name      string
		scheduled null.Time
		status    RequestStatus
		overdue   bool
	}{
		{"unscheduled", null.Time{}, StatusNew, false},
		{"scheduled in the future", future, StatusNew, false},
		{"slipped and still new", past, StatusNew, true},
		{"slipped and in progress", past, StatusInProgress, true},
		{"slipped but repaired", past, StatusRepaired, false},
		{"slipped but scrapped", past, StatusScrap, false},
		{"slipped and closed", past, StatusClosed, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := MaintenanceRequest{ScheduledDate: tc.scheduled, Status: tc.status}
			assert.Equal(t, tc.overdue, r.Overdue(now))
		})
	}
}
