package people

type ListPeopleQuery struct {
	Page   int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	Limit  int     `query:"limit" json:"limit,omitempty" default:"100" validate:"min=1,max=500"`
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=200"`
	Role   *string `query:"role" json:"role,omitempty" validate:"omitempty,oneof=author editor contributor translator"`
}

// CreatePersonPayload needs either a single name (people known by one name,
// organisations) or a family name with optional given names.
type CreatePersonPayload struct {
	FamilyName     *string `json:"family_name,omitempty" validate:"omitempty,max=200,required_without=SingleName"`
	GivenNames     *string `json:"given_names,omitempty" validate:"omitempty,max=200"`
	NameParticles  *string `json:"name_particles,omitempty" validate:"omitempty,max=100"`
	SingleName     *string `json:"single_name,omitempty" validate:"omitempty,max=200"`
	IsOrganisation bool    `json:"is_organisation,omitempty"`
}

// UpdatePersonPayload changes the display name parts only. The unified id is
// fixed at creation and never recomputed.
type UpdatePersonPayload struct {
	FamilyName     *string `json:"family_name,omitempty" validate:"omitempty,max=200"`
	GivenNames     *string `json:"given_names,omitempty" validate:"omitempty,max=200"`
	NameParticles  *string `json:"name_particles,omitempty" validate:"omitempty,max=100"`
	SingleName     *string `json:"single_name,omitempty" validate:"omitempty,max=200"`
	IsOrganisation *bool   `json:"is_organisation,omitempty"`
}
