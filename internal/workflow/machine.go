// Package workflow holds the lifecycle rules of production plans, work orders
// and their tasks as explicit transition tables.
package workflow

import (
	"fmt"

	apperrors "erp-backend/internal/errors"
)

// Operation names a lifecycle action requested on an entity
type Operation string

const (
	OpApprove  Operation = "approve"
	OpRelease  Operation = "release"
	OpStart    Operation = "start"
	OpComplete Operation = "complete"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
)

// Transition is one row of a transition table. An empty To keeps the current status.
type Transition[S ~string] struct {
	Op   Operation
	From S
	To   S
}

// Machine maps (operation, current status) to the next status or a rejection.
type Machine[S ~string] struct {
	entity      string
	transitions map[Operation]map[S]S
	rejections  map[Operation]error
}

// NewMachine builds a machine from its transition rows. rejections supplies the error
// returned when an operation is attempted from a status with no row.
func NewMachine[S ~string](entity string, rejections map[Operation]error, rows ...Transition[S]) *Machine[S] {
	m := &Machine[S]{
		entity:      entity,
		transitions: make(map[Operation]map[S]S),
		rejections:  rejections,
	}
	for _, row := range rows {
		if m.transitions[row.Op] == nil {
			m.transitions[row.Op] = make(map[S]S)
		}
		m.transitions[row.Op][row.From] = row.To
	}
	return m
}

// Entity returns the entity name the machine governs
func (m *Machine[S]) Entity() string {
	return m.entity
}

// Can reports whether op is allowed from current
func (m *Machine[S]) Can(op Operation, current S) bool {
	_, ok := m.transitions[op][current]
	return ok
}

// Next returns the status op leads to from current. On rejection the current
// status is returned unchanged together with the operation's error.
func (m *Machine[S]) Next(op Operation, current S) (S, error) {
	dst, ok := m.transitions[op][current]
	if !ok {
		return current, m.reject(op, current)
	}
	if dst == "" {
		return current, nil
	}
	return dst, nil
}

// Allowed lists the operations permitted from current
func (m *Machine[S]) Allowed(current S) []Operation {
	var ops []Operation
	for _, op := range []Operation{OpApprove, OpRelease, OpStart, OpComplete, OpUpdate, OpDelete} {
		if m.Can(op, current) {
			ops = append(ops, op)
		}
	}
	return ops
}

func (m *Machine[S]) reject(op Operation, current S) error {
	if err, ok := m.rejections[op]; ok {
		return err
	}
	return apperrors.NewInvalidStateError(m.entity, fmt.Sprintf("cannot %s %s in status %s", op, m.entity, current))
}

// keep produces guard-only rows: op is allowed from each state and leaves it unchanged.
func keep[S ~string](op Operation, states ...S) []Transition[S] {
	rows := make([]Transition[S], 0, len(states))
	for _, s := range states {
		rows = append(rows, Transition[S]{Op: op, From: s})
	}
	return rows
}
