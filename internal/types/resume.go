// Package types provides type definitions for structured data used throughout the ats-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletParams holds per-bullet display options supplied by the editor layer.
type BulletParams struct {
	Visible *bool `json:"visible,omitempty"`
}

// Bullet is a single line of resume content within a section.
type Bullet struct {
	ID     string        `json:"id,omitempty"`
	Text   string        `json:"text"`
	Params *BulletParams `json:"params,omitempty"`
}

// IsVisible reports whether the bullet participates in scoring.
// Bullets are visible unless params.visible is explicitly false.
func (b Bullet) IsVisible() bool {
	if b.Params == nil || b.Params.Visible == nil {
		return true
	}
	return *b.Params.Visible
}

// ResumeSection is a titled, ordered group of bullets.
type ResumeSection struct {
	Title   string   `json:"title"`
	Bullets []Bullet `json:"bullets,omitempty"`
}

// ResumeData is the structured resume supplied by the editor layer.
// All fields are optional; missing fields degrade to zero-contribution
// sub-scores rather than errors.
type ResumeData struct {
	Name     string          `json:"name,omitempty"`
	Title    string          `json:"title,omitempty"`
	Summary  string          `json:"summary,omitempty"`
	Sections []ResumeSection `json:"sections,omitempty"`
}
