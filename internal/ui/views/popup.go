package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers popupContent, already styled, in a width by height
// area. The area outside the popup is blank.
func (pr *PopupRenderer) RenderPopup(popupContent string, width, height int) string {
	if width <= 0 || height <= 0 {
		return popupContent
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popupContent,
		lipgloss.WithWhitespaceChars(" "))
}
