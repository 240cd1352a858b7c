package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) WithTx(tx *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: tx}
}

func (r *HistoryRepository) RecordChanges(ctx context.Context, entries []model.ChangeEntry) error {
	for _, entry := range entries {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO change_entries (
				entity_kind,
				entity_id,
				field_name,
				old_value,
				new_value,
				changed_by_id
			) VALUES (?, ?, ?, ?, ?, ?)
		`,
			entry.EntityKind,
			entry.EntityID,
			entry.FieldName,
			entry.OldValue,
			entry.NewValue,
			entry.ChangedByID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *HistoryRepository) ListChanges(ctx context.Context, kind model.EntityKind, entityID uuid.UUID) ([]model.ChangeEntry, error) {
	var entries []model.ChangeEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entity_kind,
			entity_id,
			field_name,
			old_value,
			new_value,
			changed_by_id,
			changed_at
		FROM change_entries
		WHERE entity_kind = ? AND entity_id = ?
		ORDER BY changed_at DESC
	`, kind, entityID).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) CreateComment(ctx context.Context, comment *model.RejectionComment) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO rejection_comments (
			entity_kind,
			entity_id,
			field_name,
			comment,
			author_id
		) VALUES (?, ?, ?, ?, ?)
		RETURNING
			id,
			entity_kind,
			entity_id,
			field_name,
			comment,
			author_id,
			created_at,
			is_resolved
	`,
		comment.EntityKind,
		comment.EntityID,
		comment.FieldName,
		comment.Comment,
		comment.AuthorID,
	).Scan(comment).Error
}

func (r *HistoryRepository) ListComments(ctx context.Context, kind model.EntityKind, entityID uuid.UUID) ([]model.RejectionComment, error) {
	var comments []model.RejectionComment
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entity_kind,
			entity_id,
			field_name,
			comment,
			author_id,
			created_at,
			is_resolved
		FROM rejection_comments
		WHERE entity_kind = ? AND entity_id = ?
		ORDER BY created_at
	`, kind, entityID).Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComments wipes every comment on the entity, used when the entity is
// approved or pulled back to draft.
func (r *HistoryRepository) DeleteComments(ctx context.Context, kind model.EntityKind, entityID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM rejection_comments
		WHERE entity_kind = ? AND entity_id = ?
	`, kind, entityID).Error
}
