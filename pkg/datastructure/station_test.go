package datastructure

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCoordinates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := Station{ID: "1", RawCoordinates: "[-3.7024255, 40.4168961]"}
		require.NoError(t, s.NormalizeCoordinates())
		assert.Equal(t, -3.7024255, s.Longitude)
		assert.Equal(t, 40.4168961, s.Latitude)
		assert.Equal(t, orb.Point{-3.7024255, 40.4168961}, s.Coordinates)
		assert.Equal(t, "[-3.7024255, 40.4168961]", s.RawCoordinates)
	})

	t.Run("malformed", func(t *testing.T) {
		s := Station{ID: "2", RawCoordinates: "[-3.7024255]"}
		err := s.NormalizeCoordinates()
		assert.True(t, errors.Is(err, pkg.ErrMalformedCoordinate))
		assert.Equal(t, orb.Point{}, s.Coordinates)
	})
}

func TestPlaceUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		id   ID
	}{
		{name: "string id", raw: `{"id": "4047", "title": "Fuente"}`, id: "4047"},
		{name: "number id", raw: `{"id": 4047, "title": "Fuente"}`, id: "4047"},
		{name: "null id", raw: `{"id": null, "title": "Fuente"}`, id: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p Place
			require.NoError(t, json.Unmarshal([]byte(c.raw), &p))
			assert.Equal(t, c.id, p.ID)
			assert.Nil(t, p.Address)
			assert.False(t, p.Location.Complete())
		})
	}

	t.Run("nested records", func(t *testing.T) {
		raw := `{"id": "1", "title": "Puerta de Alcalá",
			"address": {"district": {"@id": "d/Retiro"}, "locality": "MADRID", "postal-code": "28001", "street-address": "PLAZA INDEPENDENCIA 1"},
			"location": {"latitude": 40.42, "longitude": -3.68},
			"organization": {"organization-name": "Ayuntamiento", "accesibility": "0"}}`
		var p Place
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		assert.Equal(t, Text("PLAZA INDEPENDENCIA 1"), p.Address.StreetAddress)
		assert.Equal(t, "d/Retiro", p.Address.District.ID)
		assert.True(t, p.Location.Complete())
		assert.Equal(t, 40.42, *p.Location.Latitude)
		assert.Equal(t, Text("Ayuntamiento"), p.Organization.Name)
	})
}
