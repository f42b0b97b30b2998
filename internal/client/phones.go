package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-signup/models"
)

var ErrInvalidPhone = errors.New(`phone must look like "number:cityCode:countryCode"`)

// parsePhones converts "number:cityCode:countryCode" triples into request
// entries, keeping their order. Digit rules are left to the server.
func parsePhones(raw []string) ([]models.PhoneRequest, error) {
	phones := make([]models.PhoneRequest, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, r)
		}

		phones = append(phones, models.PhoneRequest{
			Number:      strings.TrimSpace(parts[0]),
			CityCode:    strings.TrimSpace(parts[1]),
			CountryCode: strings.TrimSpace(parts[2]),
		})
	}

	return phones, nil
}
