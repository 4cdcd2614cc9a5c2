package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Person struct {
	bun.BaseModel `bun:"table:people,alias:p"`

	ID             int       `bun:"person_id,pk,autoincrement" json:"person_id"`
	UnifiedID      string    `bun:"unified_id,nullzero" json:"unified_id"`
	FamilyName     *string   `bun:"family_name" json:"family_name"`
	GivenNames     *string   `bun:"given_names" json:"given_names"`
	NameParticles  *string   `bun:"name_particles" json:"name_particles"`
	SingleName     *string   `bun:"single_name" json:"single_name"`
	IsOrganisation bool      `bun:"is_organisation" json:"is_organisation"`
	CreatedAt      time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at" json:"updated_at"`

	// Populated by list queries only.
	BookCount int `bun:"book_count,scanonly" json:"book_count,omitempty"`
}

// BookPerson links a Book and a Person. The role flags are not mutually
// exclusive; the same person can be both author and translator of one book.
type BookPerson struct {
	bun.BaseModel `bun:"table:books2people,alias:b2p"`

	ID            int       `bun:"b2p_id,pk,autoincrement" json:"b2p_id"`
	BookID        int       `bun:"book_id,nullzero" json:"book_id"`
	PersonID      int       `bun:"person_id,nullzero" json:"person_id"`
	DisplayName   *string   `bun:"display_name" json:"display_name"`
	SortOrder     int       `bun:"sort_order" json:"sort_order"`
	IsAuthor      bool      `bun:"is_author" json:"is_author"`
	IsEditor      bool      `bun:"is_editor" json:"is_editor"`
	IsContributor bool      `bun:"is_contributor" json:"is_contributor"`
	IsTranslator  bool      `bun:"is_translator" json:"is_translator"`
	CreatedAt     time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`

	Person *Person `bun:"rel:belongs-to,join:person_id=person_id" json:"person,omitempty"`
}
