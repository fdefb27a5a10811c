package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	colTitle    = 24
	colUsername = 22
	colURL      = 30
)

func renderRecordTable(records []models.VaultRecord, idx int) string {
	if len(records) == 0 {
		return "No entries"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s │ %s │ %s\n",
		padRight("Title", colTitle), padRight("Username", colUsername), "URL"))
	b.WriteString(strings.Repeat("─", colTitle+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", colUsername))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", colURL))
	b.WriteString("\n")

	for i, r := range records {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s │ %s │ %s", cursor,
			padRight(fitText(r.Title, colTitle), colTitle),
			padRight(fitText(valueOrDash(r.Username), colUsername), colUsername),
			fitText(valueOrDash(r.URL), colURL))
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderRecordDetail(r models.VaultRecord) string {
	var b strings.Builder
	b.WriteString("Username: ")
	b.WriteString(valueOrDash(r.Username))
	b.WriteString("\nPassword: ")
	if r.Password == "" {
		b.WriteString("-")
	} else {
		b.WriteString("********")
	}
	b.WriteString("\nURL:      ")
	b.WriteString(valueOrDash(r.URL))
	if !r.CreatedAt.IsZero() {
		b.WriteString("\nCreated:  ")
		b.WriteString(r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if strings.TrimSpace(r.Notes) != "" {
		b.WriteString("\nNotes:\n")
		b.WriteString(r.Notes)
	}
	return b.String()
}
