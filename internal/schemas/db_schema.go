// Package schemas defines the data structures
package schemas

import "time"

// User represents the data model for a user in the system.
type User struct {
	ID        string     // Identifier assigned by the store.
	Username  string     // Unique login name.
	Password  string     // bcrypt digest, never the plaintext.
	FirstName string     // First name of the user.
	LastName  string     // Last name of the user.
	CreatedAt *time.Time // Timestamp when the user was created.
}

// Acronym represents a stored acronym and its definition.
type Acronym struct {
	ID         string     // Identifier assigned by the store.
	Acronym    string     // The abbreviation itself, e.g. "TIRY".
	Definition string     // What the abbreviation stands for.
	Category   string     // Optional grouping.
	Notes      string     // Optional free text.
	CreatedAt  *time.Time // Timestamp when the acronym was created.
}
