package models

// CatalogApp describes one entry of the fixed well-known app catalog used to
// populate the selection UI. Catalog entries are not persisted.
type CatalogApp struct {
	Name        string `json:"name"`         // Display name
	PackageName string `json:"package_name"` // Android package identifier
	Icon        string `json:"icon"`         // Emoji icon
}
