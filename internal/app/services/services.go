package services

import (
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// Services defined in this package:
// - AuthService: signs the editor in and issues access tokens
// - PageService: reads, updates, resets, exports and imports realm documents
// - SectionService: list entry and category editing on top of the section editors
// - EditService: the edit/save flow with its password confirmation
// - CatalogService: upstream course, event and blog listings with empty fallbacks
// - MediaService: image uploads and rich-text formatting commands
// - SaveMailer: e-mails a notice after each save

// persistWarning explains why an applied change was not written to storage.
func persistWarning(page pagedata.Page, persisted bool) string {
	if persisted {
		return ""
	}
	if err := page.PersistError(); err != nil {
		return "Changes are applied but could not be saved: " + err.Error()
	}
	return "Changes are applied but could not be saved"
}
