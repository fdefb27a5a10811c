package tui

import "github.com/MKhiriev/go-pass-vault/models"

func renderConfirm(r models.VaultRecord) string {
	return overlayBoxStyle.Render("Delete \"" + r.Title + "\"?\nThis cannot be undone.")
}
