package models

import "errors"

// EventState định nghĩa interface cho các trạng thái của revenue event.
// Splits bất biến; chỉ Status được chuyển: pending→processed, pending→failed,
// processed→disputed, failed→pending (retry). Mọi chuyển khác bị từ chối.
type EventState interface {
	Process(event *RevenueEvent) error
	Fail(event *RevenueEvent, reason string) error
	Dispute(event *RevenueEvent, reason string) error
	Retry(event *RevenueEvent) error
}

// PendingEventState trạng thái chờ settlement
type PendingEventState struct{}

func (s *PendingEventState) Process(event *RevenueEvent) error {
	event.Status = EventStatusProcessed
	return nil
}

func (s *PendingEventState) Fail(event *RevenueEvent, reason string) error {
	event.Status = EventStatusFailed
	event.StatusReason = reason
	return nil
}

func (s *PendingEventState) Dispute(event *RevenueEvent, reason string) error {
	return errors.New("cannot dispute pending event")
}

func (s *PendingEventState) Retry(event *RevenueEvent) error {
	return errors.New("event is already pending")
}

// ProcessedEventState trạng thái đã settlement
type ProcessedEventState struct{}

func (s *ProcessedEventState) Process(event *RevenueEvent) error {
	return errors.New("event already processed")
}

func (s *ProcessedEventState) Fail(event *RevenueEvent, reason string) error {
	return errors.New("cannot fail processed event")
}

func (s *ProcessedEventState) Dispute(event *RevenueEvent, reason string) error {
	event.Status = EventStatusDisputed
	event.StatusReason = reason
	return nil
}

func (s *ProcessedEventState) Retry(event *RevenueEvent) error {
	return errors.New("cannot retry processed event")
}

// FailedEventState trạng thái settlement thất bại
type FailedEventState struct{}

func (s *FailedEventState) Process(event *RevenueEvent) error {
	return errors.New("cannot process failed event, retry first")
}

func (s *FailedEventState) Fail(event *RevenueEvent, reason string) error {
	return errors.New("event already failed")
}

func (s *FailedEventState) Dispute(event *RevenueEvent, reason string) error {
	return errors.New("cannot dispute failed event")
}

func (s *FailedEventState) Retry(event *RevenueEvent) error {
	event.Status = EventStatusPending
	event.StatusReason = ""
	return nil
}

// DisputedEventState trạng thái đang tranh chấp, là trạng thái cuối
type DisputedEventState struct{}

func (s *DisputedEventState) Process(event *RevenueEvent) error {
	return errors.New("cannot process disputed event")
}

func (s *DisputedEventState) Fail(event *RevenueEvent, reason string) error {
	return errors.New("cannot fail disputed event")
}

func (s *DisputedEventState) Dispute(event *RevenueEvent, reason string) error {
	return errors.New("event already disputed")
}

func (s *DisputedEventState) Retry(event *RevenueEvent) error {
	return errors.New("cannot retry disputed event")
}

// GetEventState trả về state tương ứng với trạng thái event
func GetEventState(status int) EventState {
	switch status {
	case EventStatusPending:
		return &PendingEventState{}
	case EventStatusProcessed:
		return &ProcessedEventState{}
	case EventStatusFailed:
		return &FailedEventState{}
	case EventStatusDisputed:
		return &DisputedEventState{}
	default:
		return &PendingEventState{}
	}
}
