// Package models contains the gorm persistence models. One table per
// entity; comments, attachments and events carry the owning ticket's ID.
// Ownership is enforced by application logic, not database constraints.
package models

type TicketModel struct {
	ID        uint    `gorm:"primaryKey"`
	Title     string  `gorm:"size:200;not null"`
	Content   *string `gorm:"type:text"`
	Requester string  `gorm:"size:100;not null"`
	Assignee  *string `gorm:"size:100"`
	Priority  string  `gorm:"size:10;not null;default:med;index"`
	Status    string  `gorm:"size:10;not null;default:open;index"`
	CreatedAt int64   `gorm:"autoCreateTime:milli"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Author    string `gorm:"size:100;not null"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type AttachmentModel struct {
	ID         uint    `gorm:"primaryKey"`
	TicketID   uint    `gorm:"not null;index"`
	Filename   string  `gorm:"size:200;not null"`
	StoredName string  `gorm:"size:300;not null"`
	Size       int64   `gorm:"not null"`
	MimeType   *string `gorm:"size:100"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

type EventModel struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"not null;index"`
	Actor     string  `gorm:"size:100;not null"`
	Action    string  `gorm:"size:50;not null"`
	FromValue *string `gorm:"size:200"`
	ToValue   *string `gorm:"size:200"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (EventModel) TableName() string {
	return "events"
}

// SchemaInfoModel records the schema version the reconciler last converged
// to. Single row, id 1.
type SchemaInfoModel struct {
	ID        uint  `gorm:"primaryKey"`
	Version   int   `gorm:"not null"`
	AppliedAt int64 `gorm:"autoUpdateTime:milli"`
}

func (SchemaInfoModel) TableName() string {
	return "schema_info"
}
