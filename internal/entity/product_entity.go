package entity

// Product is one catalog entry. The catalog is immutable once loaded; identifiers
// are normalized to strings regardless of how the source document spells them.
type Product struct {
	Id          string `gorm:"primaryKey"`
	Name        string
	Brand       string
	Category    string `gorm:"index"`
	Image       string
	Description string
	// Position preserves source document order across catalog sources.
	Position int `gorm:"index"`
}
