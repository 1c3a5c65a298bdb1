// File: internal/service/profile.go
package service

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ServiceTypes is the fixed set of categories a provider can offer.
var ServiceTypes = []string{
	"репетитор", "бухгалтер", "программист", "дизайнер", "юрист",
	"фотограф", "маркетолог", "психолог", "переводчик", "сантехник",
}

const (
	MsgNameTooShort       = "Имя должно быть не короче 2 символов."
	MsgUnknownServiceType = "Выбери вид услуги из списка."
	MsgExperienceRange    = "Стаж должен быть в диапазоне 0..80."
	MsgExperienceNotInt   = "Стаж должен быть целым числом."
	MsgPriceRange         = "Цена должна быть положительным числом."
	MsgPriceNotInt        = "Цена должна быть целым числом."
	MsgAboutTooLong       = "Поле 'О себе' слишком длинное (макс 2000 символов)."

	MaxExperienceYears = 80
	MaxPrice           = 10_000_000
	MaxAboutLength     = 2000
)

// ProfileInput carries candidate profile fields before validation.
// Experience and Price stay untyped because clients send them either as
// JSON numbers or as strings; the validator owns the parsing.
type ProfileInput struct {
	Name        string
	ServiceType string
	Experience  any
	Price       any
	About       string
}

// ProfileValues holds the normalized result of a successful validation.
// About is nil when the field was empty after trimming.
type ProfileValues struct {
	Name        string
	ServiceType string
	Experience  int
	Price       int
	About       *string
}

// ValidateProfile checks every rule and collects every violation, so the
// client can show all problems at once. The values are only meaningful when
// the returned error list is empty; callers must reject the whole update
// otherwise.
func ValidateProfile(in ProfileInput) ([]string, ProfileValues) {
	var errs []string

	v := ProfileValues{
		Name:        strings.TrimSpace(in.Name),
		ServiceType: strings.TrimSpace(in.ServiceType),
	}
	about := strings.TrimSpace(in.About)

	if utf8.RuneCountInString(v.Name) < 2 {
		errs = append(errs, MsgNameTooShort)
	}

	if !slices.Contains(ServiceTypes, v.ServiceType) {
		errs = append(errs, MsgUnknownServiceType)
	}

	if exp, ok := toInt(in.Experience); !ok {
		errs = append(errs, MsgExperienceNotInt)
	} else if exp < 0 || exp > MaxExperienceYears {
		errs = append(errs, MsgExperienceRange)
	} else {
		v.Experience = exp
	}

	if price, ok := toInt(in.Price); !ok {
		errs = append(errs, MsgPriceNotInt)
	} else if price <= 0 || price > MaxPrice {
		errs = append(errs, MsgPriceRange)
	} else {
		v.Price = price
	}

	if about != "" && utf8.RuneCountInString(about) > MaxAboutLength {
		errs = append(errs, MsgAboutTooLong)
	}
	if about != "" {
		v.About = &about
	}

	return errs, v
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
