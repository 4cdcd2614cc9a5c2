package models

import "github.com/uptrace/bun"

// Volume is a sub-unit of a multivolume book.
type Volume struct {
	bun.BaseModel `bun:"table:books2volumes,alias:b2v"`

	ID           int     `bun:"volume_id,pk,autoincrement" json:"volume_id"`
	BookID       int     `bun:"book_id,nullzero" json:"book_id"`
	VolumeNumber *int    `bun:"volume_number" json:"volume_number"`
	VolumeTitle  *string `bun:"volume_title" json:"volume_title"`
	Pages        *int    `bun:"pages" json:"pages"`
	Notes        *string `bun:"notes" json:"notes"`
}
