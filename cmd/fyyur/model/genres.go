package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genres is an ordered list of free-text genre labels. It is stored as a
// single comma-joined text column.
type Genres []string

func (g Genres) Value() (driver.Value, error) {
	return strings.Join(g, ","), nil
}

func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = nil
	case string:
		*g = splitGenres(v)
	case []byte:
		*g = splitGenres(string(v))
	default:
		return fmt.Errorf("genres: cannot scan %T", src)
	}
	return nil
}

func splitGenres(s string) Genres {
	if s == "" {
		return nil
	}
	return Genres(strings.Split(s, ","))
}
