package models

// RegisterRequest is the sign-up payload accepted by POST /users/.
//
// The validate tags are interpreted by validators.RegisterRequestValidator,
// which also owns the user-facing message of every rule.
type RegisterRequest struct {
	Name     string         `json:"name" validate:"notblank"`
	Email    string         `json:"email" validate:"notblank,email_format"`
	Password string         `json:"password" validate:"notblank,strong_password"`
	Phones   []PhoneRequest `json:"phones" validate:"required,gt=0,dive"`
}

// PhoneRequest is a single phone entry inside [RegisterRequest].
type PhoneRequest struct {
	Number      string `json:"number" validate:"notblank,phone_number"`
	CityCode    string `json:"cityCode" validate:"notblank,city_code"`
	CountryCode string `json:"countryCode" validate:"notblank,country_dial_code"`
}

// ToPhone maps the request entry onto an owned [Phone] record.
func (p PhoneRequest) ToPhone() Phone {
	return Phone{
		Number:      p.Number,
		CityCode:    p.CityCode,
		CountryCode: p.CountryCode,
	}
}
