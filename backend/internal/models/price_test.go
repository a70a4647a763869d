package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer number", input: `3`, want: "3.0"},
		{name: "decimal number", input: `12.5`, want: "12.5"},
		{name: "zero", input: `0`, want: "0.0"},
		{name: "numeric string", input: `"10.99"`, want: "10.99"},
		{name: "integer string", input: `"10"`, want: "10.0"},
		{name: "comma separator", input: `"10,50"`, wantErr: true},
		{name: "negative number", input: `-3`, wantErr: true},
		{name: "currency symbol", input: `"$10"`, wantErr: true},
		{name: "exponent", input: `1e3`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "word", input: `"ten"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPriceMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		price Price
		want  string
	}{
		{name: "integer renders with fractional digit", price: PriceFromFloat(3), want: "3.0"},
		{name: "decimal keeps its digits", price: PriceFromFloat(12.5), want: "12.5"},
		{name: "two fractional digits", price: PriceFromFloat(10.99), want: "10.99"},
		{name: "zero", price: PriceFromFloat(0), want: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestPriceRoundTripThroughItem(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Tea","price":3}`), &item))

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Tea","price":3.0}`, string(data))
}

func TestInvalidItemsErrorListsEveryID(t *testing.T) {
	err := &InvalidItemsError{IDs: []int64{7, 42, 999}}
	assert.Equal(t, "Invalid item IDs: [7, 42, 999]", err.Error())
}
