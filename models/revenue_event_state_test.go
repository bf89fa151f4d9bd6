package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventState_PendingToProcessed(t *testing.T) {
	event := &RevenueEvent{Status: EventStatusPending}
	state := GetEventState(event.Status)

	require.NoError(t, state.Process(event))
	assert.Equal(t, EventStatusProcessed, event.Status)
}

func TestEventState_PendingToFailed(t *testing.T) {
	event := &RevenueEvent{Status: EventStatusPending}
	state := GetEventState(event.Status)

	require.NoError(t, state.Fail(event, "ví người nhận không hợp lệ"))
	assert.Equal(t, EventStatusFailed, event.Status)
	assert.Equal(t, "ví người nhận không hợp lệ", event.StatusReason)
}

func TestEventState_ProcessedToDisputed(t *testing.T) {
	event := &RevenueEvent{Status: EventStatusProcessed}
	state := GetEventState(event.Status)

	require.NoError(t, state.Dispute(event, "khiếu nại từ collaborator"))
	assert.Equal(t, EventStatusDisputed, event.Status)
	assert.Equal(t, "khiếu nại từ collaborator", event.StatusReason)
}

func TestEventState_FailedToRetry(t *testing.T) {
	event := &RevenueEvent{Status: EventStatusFailed, StatusReason: "timeout"}
	state := GetEventState(event.Status)

	require.NoError(t, state.Retry(event))
	assert.Equal(t, EventStatusPending, event.Status)
	assert.Empty(t, event.StatusReason)
}

// mọi chuyển ngoài bốn cạnh hợp lệ đều bị từ chối và không đổi trạng thái
func TestEventState_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status int
		apply  func(EventState, *RevenueEvent) error
	}{
		{"pending dispute", EventStatusPending, func(s EventState, e *RevenueEvent) error { return s.Dispute(e, "x") }},
		{"pending retry", EventStatusPending, func(s EventState, e *RevenueEvent) error { return s.Retry(e) }},
		{"processed process", EventStatusProcessed, func(s EventState, e *RevenueEvent) error { return s.Process(e) }},
		{"processed fail", EventStatusProcessed, func(s EventState, e *RevenueEvent) error { return s.Fail(e, "x") }},
		{"processed retry", EventStatusProcessed, func(s EventState, e *RevenueEvent) error { return s.Retry(e) }},
		{"failed process", EventStatusFailed, func(s EventState, e *RevenueEvent) error { return s.Process(e) }},
		{"failed fail", EventStatusFailed, func(s EventState, e *RevenueEvent) error { return s.Fail(e, "x") }},
		{"failed dispute", EventStatusFailed, func(s EventState, e *RevenueEvent) error { return s.Dispute(e, "x") }},
		{"disputed process", EventStatusDisputed, func(s EventState, e *RevenueEvent) error { return s.Process(e) }},
		{"disputed fail", EventStatusDisputed, func(s EventState, e *RevenueEvent) error { return s.Fail(e, "x") }},
		{"disputed dispute", EventStatusDisputed, func(s EventState, e *RevenueEvent) error { return s.Dispute(e, "x") }},
		{"disputed retry", EventStatusDisputed, func(s EventState, e *RevenueEvent) error { return s.Retry(e) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &RevenueEvent{Status: tt.status}
			err := tt.apply(GetEventState(tt.status), event)
			assert.Error(t, err)
			assert.Equal(t, tt.status, event.Status)
		})
	}
}
