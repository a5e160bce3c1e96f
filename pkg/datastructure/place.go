package datastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID accepts both JSON strings and JSON numbers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Text is an optional catalog string that also accepts numbers, booleans and null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(v)
	case json.Number:
		*t = Text(v.String())
	case bool:
		*t = Text(strconv.FormatBool(v))
	default:
		return fmt.Errorf("expected a scalar, got %s", b)
	}
	return nil
}

type Ref struct {
	ID string `json:"@id"`
}

type Address struct {
	District      *Ref `json:"district,omitempty"`
	Area          *Ref `json:"area,omitempty"`
	Locality      Text `json:"locality"`
	PostalCode    Text `json:"postal-code"`
	StreetAddress Text `json:"street-address"`
}

type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Complete reports whether both coordinates are present.
func (l *Location) Complete() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

type Organization struct {
	Name          Text `json:"organization-name"`
	Desc          Text `json:"organization-desc"`
	Accessibility Text `json:"accesibility"`
	Schedule      Text `json:"schedule"`
	Services      Text `json:"services"`
}

// Place model info
// @Description point of interest from the city catalog, one element of "@graph". Nested sub-records are
// nil when the catalog omits them.
type Place struct {
	ID           ID            `json:"id"`
	Title        string        `json:"title"`
	Relation     string        `json:"relation,omitempty"`
	Address      *Address      `json:"address"`
	Location     *Location     `json:"location"`
	Organization *Organization `json:"organization"`
}

// FlatPlace is a Place whose nested sub-records have been promoted to top-level fields.
type FlatPlace struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	StreetAddress    string  `json:"street-address"`
	Locality         string  `json:"locality"`
	PostalCode       string  `json:"postal-code"`
	District         string  `json:"district"`
	Area             string  `json:"area"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	OrganizationName string  `json:"organization-name"`
	OrganizationDesc string  `json:"organization-desc"`
	Accessibility    string  `json:"accesibility"`
	Schedule         string  `json:"schedule"`
	Services         string  `json:"services"`
}
