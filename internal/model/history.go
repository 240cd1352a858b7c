package model

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind discriminates the three reviewable entity kinds sharing the
// history and rejection-comment tables.
type EntityKind string

const (
	KindProgram    EntityKind = "program"
	KindProject    EntityKind = "project"
	KindSubProject EntityKind = "subproject"
)

// ChangeEntry is one field-level diff recorded after a successful update.
// Rows are append-only.
type ChangeEntry struct {
	ID          uuid.UUID
	EntityKind  EntityKind
	EntityID    uuid.UUID
	FieldName   string
	OldValue    string
	NewValue    string
	ChangedByID uuid.UUID
	ChangedAt   time.Time
}

// RejectionComment is an expert's field-level objection raised while
// rejecting a submitted entity. Comments are wiped when the entity is
// approved or redrafted by its owner.
type RejectionComment struct {
	ID         uuid.UUID
	EntityKind EntityKind
	EntityID   uuid.UUID
	FieldName  string
	Comment    string
	AuthorID   uuid.UUID
	CreatedAt  time.Time
	IsResolved bool
}
