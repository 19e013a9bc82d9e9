package popmenu

import (
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/i18n"
)

// MenuItem is a single selectable row of a popup menu.
type MenuItem struct {
	Title        string // Display text for the row
	IconFilename string // Path to a PNG, JPEG or SVG icon shown before the title
	IconBytes    []byte // Icon data loaded from embedded resources, preferred over IconFilename
	Action       func() // Called once when the row is selected, may be nil
}

// HasIcon reports whether the item carries an image.
func (item MenuItem) HasIcon() bool {
	return len(item.IconBytes) > 0 || item.IconFilename != ""
}

// LocalizedItem builds a MenuItem whose title is resolved through the i18n bundle.
// The title is looked up once, when the item is built.
func LocalizedItem(message *i18n.Message, action func()) MenuItem {
	return MenuItem{
		Title:  i18n.Localize(message, nil),
		Action: action,
	}
}
