package models

// Phone is a contact number attached to a [User].
// It has no lifecycle of its own: it is created and removed together with
// its owner.
type Phone struct {
	// ID is the store-assigned row identifier. Not exposed via JSON.
	ID int64 `json:"-"`

	// Number holds 7 to 15 digits.
	Number string `json:"number"`

	// CityCode holds 1 to 4 digits.
	CityCode string `json:"cityCode"`

	// CountryCode holds 1 to 4 digits.
	CountryCode string `json:"countryCode"`
}

// TableName returns the name of the database table
// associated with the Phone model.
func (p Phone) TableName() string {
	return "phones"
}
