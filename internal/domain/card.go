package domain

// CardParams lists the card fields accepted on create and update, in the
// order they are validated. The first missing required field is the one
// reported to the client.
var CardParams = []string{
	"name", "type", "level", "attribute", "archetype",
	"price", "sale_price", "image_url", "gen",
}

// Card represents one entry in the flat-file catalog.
// A nil SalePrice marks a non-promotional card.
type Card struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Level     int      `json:"level"`
	Attribute *string  `json:"attribute"`
	Archetype *string  `json:"archetype"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price"`
	ImageURL  string   `json:"image_url"`
	Gen       string   `json:"gen"`
}

// IsPromo reports whether the card is on sale.
func (c *Card) IsPromo() bool {
	return c.SalePrice != nil
}

// LibraryCard represents a card row from the relational card library,
// as returned by the /sql endpoints. Nullable columns map to pointers.
type LibraryCard struct {
	CardID    int64   `json:"card_id"`
	Name      string  `json:"name"`
	CardType  string  `json:"card_type"`
	Level     int     `json:"level"`
	Attribute *string `json:"attribute"`
	Archetype *string `json:"archetype"`
	Effect    *string `json:"effect"`
}
