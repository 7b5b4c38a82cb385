package domain

import "strings"

// User is a person in the upstream data set, or one created through the
// gateway and held in the overlay.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the upstream encodes them (strings).
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the user's employer.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

func (u User) EntityID() int { return u.ID }

func (u User) WithID(id int) User {
	u.ID = id
	return u
}

func (u User) ParentID() int { return 0 }

// Validate requires a name and an email address.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", "Name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "Email is required")
	}
	return nil
}
