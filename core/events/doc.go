// Package events defines the scheduling related events emitted on the
// event bus.
//
// Available event types:
//   - ScheduleEvent: a scheduling run has started
//   - AssignmentEvent: a date was assigned to a member
//   - SkipEvent: a date was left without an eligible member
package events
