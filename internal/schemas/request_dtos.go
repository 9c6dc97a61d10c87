package schemas

// CreateAcronymRequest is the body of POST /api/acronyms.
// Acronym and Definition are required, the rest is optional.
type CreateAcronymRequest struct {
	Acronym    string `json:"acronym" validate:"required,max=32"`
	Definition string `json:"definition" validate:"required,max=512"`
	Category   string `json:"category" validate:"max=64"`
	Notes      string `json:"notes" validate:"max=1024"`
}

// UpdateAcronymRequest is the body of PUT /api/acronyms/:id.
// ID is not validated here; the handler compares it with the path id.
type UpdateAcronymRequest struct {
	ID         string `json:"id"`
	Acronym    string `json:"acronym" validate:"required,max=32"`
	Definition string `json:"definition" validate:"required,max=512"`
	Category   string `json:"category" validate:"max=64"`
	Notes      string `json:"notes" validate:"max=1024"`
}

// RegistrationRequest is the body of POST /api/users.
// bcrypt only looks at the first 72 bytes, hence the upper bound.
type RegistrationRequest struct {
	Username  string `json:"username" validate:"required,max=30,username_validation"`
	Password  string `json:"password" validate:"required,min=10,max=72" sanitize:"-"`
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
}
