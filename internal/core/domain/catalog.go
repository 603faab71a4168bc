package domain

import "time"

// Category groups products for browsing and reporting.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Brand identifies the manufacturer or label of a product.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttributeType is the value type carried by a product attribute.
type AttributeType string

const (
	AttributeText    AttributeType = "text"
	AttributeNumber  AttributeType = "number"
	AttributeBoolean AttributeType = "boolean"
	AttributeSelect  AttributeType = "select"
)

// IsValid reports whether t is a known attribute type.
func (t AttributeType) IsValid() bool {
	switch t {
	case AttributeText, AttributeNumber, AttributeBoolean, AttributeSelect:
		return true
	}
	return false
}

// Attribute describes a product property. Options is only meaningful for select attributes.
type Attribute struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      AttributeType `json:"type"`
	Options   []string      `json:"options,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// AllowsOption reports whether value is one of the attribute's select options.
func (a Attribute) AllowsOption(value string) bool {
	for _, o := range a.Options {
		if o == value {
			return true
		}
	}
	return false
}
