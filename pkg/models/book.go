package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID                 int       `bun:"book_id,pk,autoincrement" json:"book_id"`
	CompositeID        string    `bun:"composite_id,nullzero" json:"composite_id"`
	Title              string    `bun:"title,nullzero" json:"title"`
	Subtitle           *string   `bun:"subtitle" json:"subtitle"`
	Publisher          *string   `bun:"publisher" json:"publisher"`
	PlaceOfPublication *string   `bun:"place_of_publication" json:"place_of_publication"`
	PublicationYear    *int      `bun:"publication_year" json:"publication_year"`
	Edition            *string   `bun:"edition" json:"edition"`
	Pages              *int      `bun:"pages" json:"pages"`
	ISBN               *string   `bun:"isbn" json:"isbn"`
	FormatOriginal     *string   `bun:"format_original" json:"format_original"`
	FormatExpanded     *string   `bun:"format_expanded" json:"format_expanded"`
	Condition          *string   `bun:"condition" json:"condition"`
	Copies             *int      `bun:"copies" json:"copies"`
	Illustrations      *string   `bun:"illustrations" json:"illustrations"`
	Packaging          *string   `bun:"packaging" json:"packaging"`
	TopicID            *int      `bun:"topic_id" json:"topic_id"`
	IsTranslation      bool      `bun:"is_translation" json:"is_translation"`
	OriginalLanguage   *string   `bun:"original_language" json:"original_language"`
	IsMultivolume      bool      `bun:"is_multivolume" json:"is_multivolume"`
	SeriesTitle        *string   `bun:"series_title" json:"series_title"`
	TotalVolumes       *int      `bun:"total_volumes" json:"total_volumes"`
	IsRemoved          bool      `bun:"is_removed" json:"is_removed"`
	CreatedAt          time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bun:"updated_at" json:"updated_at"`

	// Relations
	Topic     *Topic        `bun:"rel:belongs-to,join:topic_id=topic_id" json:"topic,omitempty"`
	People    []*BookPerson `bun:"rel:has-many,join:book_id=book_id" json:"people,omitempty"`
	Prices    []*Price      `bun:"rel:has-many,join:book_id=book_id" json:"prices,omitempty"`
	Volumes   []*Volume     `bun:"rel:has-many,join:book_id=book_id" json:"volumes,omitempty"`
	AdminData *BookAdmin    `bun:"rel:has-one,join:book_id=book_id" json:"admin_data,omitempty"`
}

// PeopleByRole splits the book's people links by their role flags. A person
// appears in every list whose flag is set on the link.
type PeopleByRole struct {
	Authors      []*BookPerson `json:"authors"`
	Editors      []*BookPerson `json:"editors"`
	Contributors []*BookPerson `json:"contributors"`
	Translators  []*BookPerson `json:"translators"`
}

func (b *Book) PeopleByRole() PeopleByRole {
	split := PeopleByRole{
		Authors:      []*BookPerson{},
		Editors:      []*BookPerson{},
		Contributors: []*BookPerson{},
		Translators:  []*BookPerson{},
	}
	for _, bp := range b.People {
		if bp.IsAuthor {
			split.Authors = append(split.Authors, bp)
		}
		if bp.IsEditor {
			split.Editors = append(split.Editors, bp)
		}
		if bp.IsContributor {
			split.Contributors = append(split.Contributors, bp)
		}
		if bp.IsTranslator {
			split.Translators = append(split.Translators, bp)
		}
	}
	return split
}
