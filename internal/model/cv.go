package model

import (
	"time"

	"github.com/google/uuid"
)

// CVSingletonKey is the fixed value stored in every CV row's
// singleton_key column. The unique index on that column makes "at most
// one CV" hold even under concurrent writers.
const CVSingletonKey = "cv"

// CV stores the portfolio CV as a single PDF blob. At most one row may
// exist at any time; replacement deletes the old row and inserts the new
// one inside one transaction.
type CV struct {
	BaseModel
	SingletonKey string `gorm:"type:varchar(10);not null;default:'cv';uniqueIndex" json:"-"`
	Filename     string `gorm:"type:varchar(255);not null" json:"filename"`
	FileData     []byte `gorm:"not null" json:"-"` // Never serialized outside the download path
	FileSize     int    `gorm:"not null" json:"file_size"`
}

// CVResponse is the metadata view of the stored CV. The binary payload
// is deliberately absent so it can never leak into error or list
// responses.
type CVResponse struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	FileSize   int       `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ToResponse converts CV to its metadata representation.
func (c *CV) ToResponse() CVResponse {
	return CVResponse{
		ID:         c.ID,
		Filename:   c.Filename,
		FileSize:   c.FileSize,
		UploadedAt: c.CreatedAt,
	}
}
