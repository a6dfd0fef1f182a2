package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogPrefix is the URL prefix all catalog pages are served under.
const CatalogPrefix = "/catalog"

type BookInstanceStatus string

const (
	BookInstanceStatusAvailable   BookInstanceStatus = "Available"
	BookInstanceStatusMaintenance BookInstanceStatus = "Maintenance"
	BookInstanceStatusLoaned      BookInstanceStatus = "Loaned"
	BookInstanceStatusReserved    BookInstanceStatus = "Reserved"
)

// BookInstanceStatuses lists every status a copy can be in, in display order.
var BookInstanceStatuses = []BookInstanceStatus{
	BookInstanceStatusAvailable,
	BookInstanceStatusMaintenance,
	BookInstanceStatusLoaned,
	BookInstanceStatusReserved,
}

const displayDateLayout = "Jan 2, 2006"

type Author struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	FamilyName  string     `gorm:"index;size:100;not null" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Genre struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512;not null" json:"title"`
	Summary   string    `gorm:"type:text" json:"summary,omitempty"`
	ISBN      string    `gorm:"size:20" json:"isbn,omitempty"`
	AuthorID  uuid.UUID `gorm:"type:char(36);index" json:"author_id"`
	Author    *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genres    []Genre   `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookInstance is a physical copy of a book that can be lent out.
type BookInstance struct {
	ID        uuid.UUID          `gorm:"type:char(36);primaryKey" json:"id"`
	BookID    uuid.UUID          `gorm:"type:char(36);index;not null" json:"book_id"`
	Book      *Book              `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Imprint   string             `gorm:"size:256;not null" json:"imprint"`
	Status    BookInstanceStatus `gorm:"index;size:20;default:'Maintenance'" json:"status"`
	DueBack   time.Time          `json:"due_back"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	if bi.Status == "" {
		bi.Status = BookInstanceStatusMaintenance
	}
	return nil
}

// Name returns "FamilyName, FirstName", or an empty string when either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan formats the author's birth and death dates, e.g. "Jan 2, 1920 - Apr 6, 1992".
func (a Author) Lifespan() string {
	var birth, death string
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format(displayDateLayout)
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format(displayDateLayout)
	}
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}

func (a Author) URL() string {
	return CatalogPrefix + "/author/" + a.ID.String()
}

func (g Genre) URL() string {
	return CatalogPrefix + "/genre/" + g.ID.String()
}

func (b Book) URL() string {
	return CatalogPrefix + "/book/" + b.ID.String()
}

func (bi BookInstance) URL() string {
	return CatalogPrefix + "/bookinstance/" + bi.ID.String()
}

func (bi BookInstance) DueBackFormatted() string {
	if bi.DueBack.IsZero() {
		return ""
	}
	return bi.DueBack.Format(displayDateLayout)
}

func (bi BookInstance) IsAvailable() bool {
	return bi.Status == BookInstanceStatusAvailable
}
