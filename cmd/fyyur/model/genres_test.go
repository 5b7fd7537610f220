package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenres_Value(t *testing.T) {
	v, err := Genres{"Jazz", "Folk", "Rock n Roll"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Jazz,Folk,Rock n Roll", v)
}

func TestGenres_Value_Empty(t *testing.T) {
	v, err := Genres{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestGenres_Scan_String(t *testing.T) {
	var g Genres
	err := g.Scan("Jazz,Folk")
	assert.NoError(t, err)
	assert.Equal(t, Genres{"Jazz", "Folk"}, g)
}

func TestGenres_Scan_Bytes(t *testing.T) {
	var g Genres
	err := g.Scan([]byte("Classical"))
	assert.NoError(t, err)
	assert.Equal(t, Genres{"Classical"}, g)
}

func TestGenres_Scan_EmptyAndNil(t *testing.T) {
	var g Genres
	assert.NoError(t, g.Scan(""))
	assert.Nil(t, g)

	g = Genres{"stale"}
	assert.NoError(t, g.Scan(nil))
	assert.Nil(t, g)
}

func TestGenres_Scan_UnsupportedType(t *testing.T) {
	var g Genres
	assert.Error(t, g.Scan(42))
}

func TestGenres_OrderPreserved(t *testing.T) {
	var g Genres
	err := g.Scan("Soul,Blues,Funk")
	assert.NoError(t, err)
	assert.Equal(t, Genres{"Soul", "Blues", "Funk"}, g)
}
