// Package dto holds the wire shapes of maze layout documents as stored on
// disk, decoupled from the domain types.
package dto

// LayoutMetadata is the frontmatter of a maze layout document. It uses
// "mapstructure" tags to match the YAML frontmatter keys.
type LayoutMetadata struct {
	ID      string `json:"id" mapstructure:"id"`
	Name    string `json:"name" mapstructure:"name"`
	Default bool   `json:"default" mapstructure:"default"`
}
