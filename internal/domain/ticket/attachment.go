package ticket

import (
	"fmt"
	"time"
)

// Attachment is a child record owned by exactly one ticket. The stored name
// is an opaque reference (token-prefixed sanitized filename) inside the
// ticket's storage subdirectory; it is distinct from the user-facing
// original filename.
type Attachment struct {
	id         uint
	ticketID   uint
	filename   string
	storedName string
	size       int64
	mimeType   string
	createdAt  time.Time
}

func NewAttachment(ticketID uint, filename, storedName string, size int64, mimeType string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(storedName) == 0 {
		return nil, fmt.Errorf("stored name is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		ticketID:   ticketID,
		filename:   filename,
		storedName: storedName,
		size:       size,
		mimeType:   mimeType,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id, ticketID uint,
	filename, storedName string,
	size int64,
	mimeType string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		filename:   filename,
		storedName: storedName,
		size:       size,
		mimeType:   mimeType,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
