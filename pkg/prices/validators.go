package prices

type CreatePricePayload struct {
	BookID int     `json:"book_id" validate:"required,min=1"`
	Amount int     `json:"amount" validate:"required,gt=0"`
	Source *string `json:"source,omitempty" validate:"omitempty,max=200"`
}
