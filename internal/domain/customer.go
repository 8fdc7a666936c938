package domain

// Customer is a gym member identified by an 8-digit national document
// number. The national id is immutable after registration.
type Customer struct {
	ID         int32  `json:"id"`
	NationalID string `json:"national_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Active     bool   `json:"active"`
	CreatedOn  string `json:"created_on"`
	UpdatedOn  string `json:"updated_on"`
}

// ValidateNationalID accepts exactly 8 decimal digits, nothing else.
// Shorter, longer or non-numeric input is a validation failure, which is
// distinct from a well-formed id that matches no customer.
func ValidateNationalID(id string) error {
	if len(id) != 8 {
		return ErrInvalidNationalID
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return ErrInvalidNationalID
		}
	}
	return nil
}

// Roster is an in-memory customer collection used when a lookup runs
// against an already-loaded set instead of the database.
type Roster []Customer

// FindByNationalID validates the id first, then scans for a match.
// A malformed id never reports not-found.
func (r Roster) FindByNationalID(nationalID string) (*Customer, error) {
	if err := ValidateNationalID(nationalID); err != nil {
		return nil, err
	}
	for i := range r {
		if r[i].NationalID == nationalID {
			return &r[i], nil
		}
	}
	return nil, ErrCustomerNotFound
}
