package entity

import "time"

// Product represents a fabric type (e.g. "Süprem 30/1", "Ribana 2x2").
type Product struct {
	ID          string
	Name        string
	Code        string // short code used on lots and price lists
	Composition string // e.g. "%95 pamuk %5 elastan"
	GramWeight  int    // gr/m2, 0 when unspecified
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
