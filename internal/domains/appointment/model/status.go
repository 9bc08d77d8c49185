package model

import (
	"errors"
	"fmt"
	"slices"
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusArrived     Status = "arrived"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

// ActiveStatuses hold their time slot. Cancelled and no-show appointments free it.
var ActiveStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusArrived,
	StatusInProgress,
	StatusCompleted,
	StatusRescheduled,
}

func (s Status) Active() bool {
	return slices.Contains(ActiveStatuses, s)
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

func (s Status) Valid() bool {
	return s.Active() || s == StatusCancelled || s == StatusNoShow
}

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionArrive     Action = "arrive"
	ActionStart      Action = "start"
	ActionComplete   Action = "complete"
	ActionCancel     Action = "cancel"
	ActionNoShow     Action = "no_show"
	ActionReschedule Action = "reschedule"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type transition struct {
	from   []Status
	to     Status
	change ChangeType
}

var transitions = map[Action]transition{
	ActionConfirm:    {from: []Status{StatusScheduled, StatusRescheduled}, to: StatusConfirmed, change: ChangeTypeStatusChanged},
	ActionArrive:     {from: []Status{StatusConfirmed}, to: StatusArrived, change: ChangeTypeStatusChanged},
	ActionStart:      {from: []Status{StatusArrived}, to: StatusInProgress, change: ChangeTypeStatusChanged},
	ActionComplete:   {from: []Status{StatusInProgress}, to: StatusCompleted, change: ChangeTypeStatusChanged},
	ActionCancel:     {from: []Status{StatusScheduled, StatusConfirmed, StatusRescheduled}, to: StatusCancelled, change: ChangeTypeCancelled},
	ActionNoShow:     {from: []Status{StatusConfirmed, StatusArrived}, to: StatusNoShow, change: ChangeTypeStatusChanged},
	ActionReschedule: {from: []Status{StatusScheduled, StatusConfirmed, StatusRescheduled}, to: StatusRescheduled, change: ChangeTypeRescheduled},
}

// Next returns the status reached by applying action to from, and the history
// change type to record. Unknown or disallowed moves wrap ErrInvalidTransition.
func Next(from Status, action Action) (Status, ChangeType, error) {
	t, ok := transitions[action]
	if !ok {
		return from, "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}

	if !slices.Contains(t.from, from) {
		return from, "", fmt.Errorf("%w: cannot %s an appointment that is %s", ErrInvalidTransition, action, from)
	}

	return t.to, t.change, nil
}

func CanTransition(from Status, action Action) bool {
	_, _, err := Next(from, action)

	return err == nil
}
