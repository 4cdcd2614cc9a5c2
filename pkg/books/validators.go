package books

// DefaultPageLimit is the page size used when the caller doesn't give one.
const DefaultPageLimit = 100

type ListBooksQuery struct {
	Page   int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	Limit  int     `query:"limit" json:"limit,omitempty" default:"100" validate:"min=1,max=500"`
	Topic  *string `query:"topic" json:"topic,omitempty" validate:"omitempty,max=200"`
	Author *int    `query:"author" json:"author,omitempty" validate:"omitempty,min=1"`
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=200"`
}

// PersonLinkInput associates an existing person with a book. The role flags
// are not mutually exclusive.
type PersonLinkInput struct {
	PersonID      int     `json:"person_id" validate:"required,min=1"`
	DisplayName   *string `json:"display_name,omitempty" validate:"omitempty,max=300"`
	SortOrder     int     `json:"sort_order,omitempty" validate:"min=0"`
	IsAuthor      bool    `json:"is_author,omitempty"`
	IsEditor      bool    `json:"is_editor,omitempty"`
	IsContributor bool    `json:"is_contributor,omitempty"`
	IsTranslator  bool    `json:"is_translator,omitempty"`
}

type VolumeInput struct {
	VolumeNumber *int    `json:"volume_number,omitempty" validate:"omitempty,min=1"`
	VolumeTitle  *string `json:"volume_title,omitempty" validate:"omitempty,max=500"`
	Pages        *int    `json:"pages,omitempty" validate:"omitempty,min=1"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type AdminDataInput struct {
	OriginalEntry     string  `json:"original_entry" validate:"required,max=5000"`
	ParsingConfidence *string `json:"parsing_confidence,omitempty" validate:"omitempty,max=100"`
	NeedsReview       bool    `json:"needs_review,omitempty"`
	VerificationNotes *string `json:"verification_notes,omitempty" validate:"omitempty,max=2000"`
	BatchID           *string `json:"batch_id,omitempty" validate:"omitempty,max=100"`
}

type CreateBookPayload struct {
	Title              string            `json:"title" validate:"required,max=500"`
	Subtitle           *string           `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	Publisher          *string           `json:"publisher,omitempty" validate:"omitempty,max=300"`
	PlaceOfPublication *string           `json:"place_of_publication,omitempty" validate:"omitempty,max=300"`
	PublicationYear    *int              `json:"publication_year,omitempty"`
	Edition            *string           `json:"edition,omitempty" validate:"omitempty,max=100"`
	Pages              *int              `json:"pages,omitempty" validate:"omitempty,min=1"`
	ISBN               *string           `json:"isbn,omitempty" validate:"omitempty,max=20"`
	FormatOriginal     *string           `json:"format_original,omitempty" validate:"omitempty,max=100"`
	FormatExpanded     *string           `json:"format_expanded,omitempty" validate:"omitempty,max=200"`
	Condition          *string           `json:"condition,omitempty" validate:"omitempty,max=200"`
	Copies             *int              `json:"copies,omitempty" validate:"omitempty,min=1"`
	Illustrations      *string           `json:"illustrations,omitempty" validate:"omitempty,max=200"`
	Packaging          *string           `json:"packaging,omitempty" validate:"omitempty,max=200"`
	TopicID            *int              `json:"topic_id,omitempty" validate:"omitempty,min=1"`
	IsTranslation      bool              `json:"is_translation,omitempty"`
	OriginalLanguage   *string           `json:"original_language,omitempty" validate:"omitempty,max=100"`
	IsMultivolume      bool              `json:"is_multivolume,omitempty"`
	SeriesTitle        *string           `json:"series_title,omitempty" validate:"omitempty,max=500"`
	TotalVolumes       *int              `json:"total_volumes,omitempty" validate:"omitempty,min=1"`
	People             []PersonLinkInput `json:"people,omitempty" validate:"omitempty,dive"`
	Volumes            []VolumeInput     `json:"volumes,omitempty" validate:"omitempty,dive"`
	AdminData          *AdminDataInput   `json:"admin_data,omitempty"`
}

// UpdateBookPayload is the typed partial update. Only the fields listed here
// can be changed; everything else on the row is off limits.
type UpdateBookPayload struct {
	Title              *string `json:"title,omitempty" validate:"omitempty,max=500"`
	Subtitle           *string `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	Publisher          *string `json:"publisher,omitempty" validate:"omitempty,max=300"`
	PlaceOfPublication *string `json:"place_of_publication,omitempty" validate:"omitempty,max=300"`
	PublicationYear    *int    `json:"publication_year,omitempty"`
	Edition            *string `json:"edition,omitempty" validate:"omitempty,max=100"`
	Pages              *int    `json:"pages,omitempty" validate:"omitempty,min=1"`
	ISBN               *string `json:"isbn,omitempty" validate:"omitempty,max=20"`
	FormatOriginal     *string `json:"format_original,omitempty" validate:"omitempty,max=100"`
	FormatExpanded     *string `json:"format_expanded,omitempty" validate:"omitempty,max=200"`
	Condition          *string `json:"condition,omitempty" validate:"omitempty,max=200"`
	Copies             *int    `json:"copies,omitempty" validate:"omitempty,min=1"`
	Illustrations      *string `json:"illustrations,omitempty" validate:"omitempty,max=200"`
	Packaging          *string `json:"packaging,omitempty" validate:"omitempty,max=200"`
	TopicID            *int    `json:"topic_id,omitempty" validate:"omitempty,min=1"`
	IsTranslation      *bool   `json:"is_translation,omitempty"`
	OriginalLanguage   *string `json:"original_language,omitempty" validate:"omitempty,max=100"`
	IsMultivolume      *bool   `json:"is_multivolume,omitempty"`
	SeriesTitle        *string `json:"series_title,omitempty" validate:"omitempty,max=500"`
	TotalVolumes       *int    `json:"total_volumes,omitempty" validate:"omitempty,min=1"`
}

// SoftDeletePayload is the PATCH body. Only is_removed=true is supported.
type SoftDeletePayload struct {
	IsRemoved bool `json:"is_removed"`
}
