package catalog

import (
	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

// NestedField names a nested sub-record of a catalog Place.
type NestedField string

const (
	FieldAddress      NestedField = "address"
	FieldLocation     NestedField = "location"
	FieldOrganization NestedField = "organization"
)

// DefaultRequiredFields is the promotion order used by the monuments dataset.
var DefaultRequiredFields = []NestedField{FieldAddress, FieldLocation, FieldOrganization}

func ParseNestedFields(names []string) ([]NestedField, error) {
	fields := make([]NestedField, 0, len(names))
	for _, name := range names {
		field := NestedField(name)
		if !field.valid() {
			return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown nested field %q", name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (f NestedField) valid() bool {
	switch f {
	case FieldAddress, FieldLocation, FieldOrganization:
		return true
	}
	return false
}

// present reports whether the sub-record named by f carries a value.
func (f NestedField) present(p datastructure.Place) bool {
	switch f {
	case FieldAddress:
		return p.Address != nil
	case FieldLocation:
		return p.Location.Complete()
	case FieldOrganization:
		return p.Organization != nil
	}
	return false
}

// promote copies the keys of the sub-record named by f onto flat. Later calls overwrite earlier ones.
func (f NestedField) promote(flat *datastructure.FlatPlace, p datastructure.Place) {
	switch f {
	case FieldAddress:
		flat.StreetAddress = string(p.Address.StreetAddress)
		flat.Locality = string(p.Address.Locality)
		flat.PostalCode = string(p.Address.PostalCode)
		if p.Address.District != nil {
			flat.District = p.Address.District.ID
		}
		if p.Address.Area != nil {
			flat.Area = p.Address.Area.ID
		}
	case FieldLocation:
		flat.Latitude = *p.Location.Latitude
		flat.Longitude = *p.Location.Longitude
	case FieldOrganization:
		flat.OrganizationName = string(p.Organization.Name)
		flat.OrganizationDesc = string(p.Organization.Desc)
		flat.Accessibility = string(p.Organization.Accessibility)
		flat.Schedule = string(p.Organization.Schedule)
		flat.Services = string(p.Organization.Services)
	}
}

// Flatten drops every place lacking an id, a title or any of the required nested sub-records, and
// promotes the required sub-records of the remaining places to top-level fields in the given order.
// Input order is preserved.
func Flatten(places []datastructure.Place, required []NestedField) ([]datastructure.FlatPlace, error) {
	for _, field := range required {
		if !field.valid() {
			return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown nested field %q", field)
		}
	}

	flat := make([]datastructure.FlatPlace, 0, len(places))
	for _, place := range places {
		if !complete(place, required) {
			continue
		}

		row := datastructure.FlatPlace{
			ID:    string(place.ID),
			Title: place.Title,
		}
		for _, field := range required {
			field.promote(&row, place)
		}
		flat = append(flat, row)
	}
	return flat, nil
}

func complete(place datastructure.Place, required []NestedField) bool {
	if place.ID == "" || place.Title == "" {
		return false
	}
	for _, field := range required {
		if !field.present(place) {
			return false
		}
	}
	return true
}
