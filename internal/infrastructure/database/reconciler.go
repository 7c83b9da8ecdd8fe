package database

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// schemaVersion is the version recorded in schema_info once every step has
// converged. Bump it when appending a step.
const schemaVersion = 6

// Reconciler brings an existing store's structure up to the structure the
// current application version expects, without data loss. It runs once at
// startup, before any request handling; a failure is fatal.
//
// Every step is additive and guarded by a probe of the live schema, so the
// whole sequence is idempotent: running it N times produces the same
// structure as running it once, and a partially applied run converges on
// rerun. Existing columns are never altered or dropped.
type Reconciler struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewReconciler(db *gorm.DB, logger logger.Interface) *Reconciler {
	return &Reconciler{
		db:     db,
		logger: logger,
	}
}

// step is one structural change, applied in order. The guard inside run
// checks the live schema before touching anything.
type step struct {
	version int
	name    string
	run     func(db *gorm.DB) error
}

func (r *Reconciler) steps() []step {
	return []step{
		{1, "create tickets table", func(db *gorm.DB) error {
			return ensureTable(db, &models.TicketModel{})
		}},
		{2, "backfill ticket columns", r.backfillTicketColumns},
		{3, "create comments table", func(db *gorm.DB) error {
			return ensureTable(db, &models.CommentModel{})
		}},
		{4, "create attachments table", func(db *gorm.DB) error {
			return ensureTable(db, &models.AttachmentModel{})
		}},
		{5, "backfill attachment mime_type column", func(db *gorm.DB) error {
			return ensureColumn(db, &models.AttachmentModel{}, "MimeType")
		}},
		{6, "create events table", func(db *gorm.DB) error {
			return ensureTable(db, &models.EventModel{})
		}},
	}
}

// Run reconciles the store's schema. Any step failure aborts with a
// startup error; the caller must not serve requests against a store in an
// unknown structural state.
func (r *Reconciler) Run(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	for _, s := range r.steps() {
		if err := s.run(db); err != nil {
			return errors.NewStartupError("schema reconciliation failed: "+s.name, err.Error())
		}
		r.logger.Debugw("schema step reconciled", "version", s.version, "name", s.name)
	}

	if err := r.recordVersion(db); err != nil {
		return errors.NewStartupError("failed to record schema version", err.Error())
	}

	r.logger.Infow("schema reconciled", "version", schemaVersion)
	return nil
}

// backfillTicketColumns adds every column the current ticket model requires
// that is absent from the live table. Columns added to a pre-existing table
// receive either a static default (priority, status) or stay null
// (content, assignee, timestamps); existing columns are left untouched.
func (r *Reconciler) backfillTicketColumns(db *gorm.DB) error {
	type backfill struct {
		field string
		patch string
	}

	required := []backfill{
		{field: "Content"},
		{field: "Assignee"},
		{field: "Priority", patch: "UPDATE tickets SET priority = 'med' WHERE priority IS NULL OR priority = ''"},
		{field: "Status", patch: "UPDATE tickets SET status = 'open' WHERE status IS NULL OR status = ''"},
		{field: "CreatedAt"},
		{field: "UpdatedAt"},
	}

	migrator := db.Migrator()
	for _, col := range required {
		if migrator.HasColumn(&models.TicketModel{}, col.field) {
			continue
		}

		if err := migrator.AddColumn(&models.TicketModel{}, col.field); err != nil {
			return err
		}
		r.logger.Infow("added missing ticket column", "field", col.field)

		if col.patch != "" {
			if err := db.Exec(col.patch).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Reconciler) recordVersion(db *gorm.DB) error {
	if err := ensureTable(db, &models.SchemaInfoModel{}); err != nil {
		return err
	}

	var info models.SchemaInfoModel
	err := db.First(&info, 1).Error
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&models.SchemaInfoModel{ID: 1, Version: schemaVersion}).Error
	case err != nil:
		return err
	case info.Version != schemaVersion:
		return db.Model(&info).Update("version", schemaVersion).Error
	default:
		return nil
	}
}

func ensureTable(db *gorm.DB, model interface{}) error {
	migrator := db.Migrator()
	if migrator.HasTable(model) {
		return nil
	}
	return migrator.CreateTable(model)
}

func ensureColumn(db *gorm.DB, model interface{}, field string) error {
	migrator := db.Migrator()
	if migrator.HasColumn(model, field) {
		return nil
	}
	return migrator.AddColumn(model, field)
}
