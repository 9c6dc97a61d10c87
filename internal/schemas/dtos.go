package schemas

// UserDTO is the external representation of a user.
// It has no password field, so a digest can never be serialized by accident.
type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewUserDTO returns the external representation of the given user.
func NewUserDTO(user *User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// AcronymDTO is the external representation of an acronym.
// Category and Notes are omitted when empty.
type AcronymDTO struct {
	ID         string `json:"id"`
	Acronym    string `json:"acronym"`
	Definition string `json:"definition"`
	Category   string `json:"category,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// NewAcronymDTO returns the external representation of the given acronym.
func NewAcronymDTO(acronym *Acronym) AcronymDTO {
	return AcronymDTO{
		ID:         acronym.ID,
		Acronym:    acronym.Acronym,
		Definition: acronym.Definition,
		Category:   acronym.Category,
		Notes:      acronym.Notes,
	}
}

// NewAcronymDTOs maps a list of acronyms, always returning a non-nil slice
// so an empty list is encoded as [] instead of null.
func NewAcronymDTOs(acronyms []*Acronym) []AcronymDTO {
	dtos := make([]AcronymDTO, 0, len(acronyms))
	for _, acronym := range acronyms {
		dtos = append(dtos, NewAcronymDTO(acronym))
	}
	return dtos
}

// AuthTokenDTO is returned by login and refresh.
type AuthTokenDTO struct {
	AuthToken string `json:"authToken"`
}

// MetadataDTO is returned by the root route.
type MetadataDTO struct {
	ApiName    string `json:"apiName"`
	ApiVersion string `json:"apiVersion"`
}

// ProtectedDTO is returned by the /api/protected route.
type ProtectedDTO struct {
	Data string `json:"data"`
}
