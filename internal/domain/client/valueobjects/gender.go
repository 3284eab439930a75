package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidGender = errors.New("invalid gender")

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func ParseGender(value string) (Gender, error) {
	v := strings.TrimSpace(value)
	for _, g := range Genders {
		if strings.EqualFold(v, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, value)
}

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
