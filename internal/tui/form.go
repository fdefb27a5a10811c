package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldCount
)

var fieldLabels = [...]string{"Title", "Username", "Password", "URL", "Notes"}

// FormModel edits a single record. Notes use a textarea; the rest are single
// line inputs. ID and CreatedAt of the edited record are carried through.
type FormModel struct {
	record models.VaultRecord

	inputs []textinput.Model
	notes  textarea.Model
	focus  int

	gen      *generator.Generator
	genOpts  generator.Options
	strength generator.Strength
	revealed bool

	saving bool
	errMsg string
}

func NewFormModel(record models.VaultRecord) *FormModel {
	inputs := make([]textinput.Model, fieldNotes)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = strings.ToLower(fieldLabels[i])
		in.Width = 40
		in.CharLimit = 512
		inputs[i] = in
	}
	inputs[fieldTitle].CharLimit = 50
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	inputs[fieldTitle].SetValue(record.Title)
	inputs[fieldUsername].SetValue(record.Username)
	inputs[fieldPassword].SetValue(record.Password)
	inputs[fieldURL].SetValue(record.URL)
	inputs[fieldTitle].Focus()

	notes := textarea.New()
	notes.Placeholder = "notes"
	notes.ShowLineNumbers = false
	notes.SetWidth(42)
	notes.SetHeight(3)
	notes.SetValue(record.Notes)

	f := &FormModel{
		record:  record,
		inputs:  inputs,
		notes:   notes,
		gen:     generator.New(),
		genOpts: generator.DefaultOptions(),
	}
	f.rateTyped()
	return f
}

func (f *FormModel) editing() bool {
	return f.record.ID != ""
}

// Record returns the record with the current field values.
func (f *FormModel) Record() models.VaultRecord {
	r := f.record
	r.Title = strings.TrimSpace(f.inputs[fieldTitle].Value())
	r.Username = strings.TrimSpace(f.inputs[fieldUsername].Value())
	r.Password = f.inputs[fieldPassword].Value()
	r.URL = strings.TrimSpace(f.inputs[fieldURL].Value())
	r.Notes = f.notes.Value()
	return r
}

// Update handles form keys and reports whether the user saved or left.
func (f *FormModel) Update(msg tea.Msg) (formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return formCancel, nil
		case key.Matches(keyMsg, keys.save):
			if f.saving {
				return formNone, nil
			}
			if strings.TrimSpace(f.inputs[fieldTitle].Value()) == "" {
				f.errMsg = "Title is required"
				return formNone, nil
			}
			f.errMsg = ""
			return formSubmit, nil
		case keyMsg.String() == "tab" || keyMsg.String() == "shift+tab":
			step := 1
			if keyMsg.String() == "shift+tab" {
				step = -1
			}
			return formNone, f.setFocus(f.focus + step)
		case key.Matches(keyMsg, keys.generate):
			f.generate()
			return formNone, nil
		case key.Matches(keyMsg, keys.reveal):
			f.toggleReveal()
			return formNone, nil
		case key.Matches(keyMsg, keys.numbers):
			f.genOpts.Numbers = !f.genOpts.Numbers
			return formNone, nil
		case key.Matches(keyMsg, keys.symbols):
			f.genOpts.Symbols = !f.genOpts.Symbols
			return formNone, nil
		case key.Matches(keyMsg, keys.lookAlike):
			f.genOpts.ExcludeLookAlikes = !f.genOpts.ExcludeLookAlikes
			return formNone, nil
		case key.Matches(keyMsg, keys.longer):
			f.genOpts.Length = min(f.genOpts.Length+1, generator.MaxLength)
			return formNone, nil
		case key.Matches(keyMsg, keys.shorter):
			f.genOpts.Length = max(f.genOpts.Length-1, generator.MinLength)
			return formNone, nil
		}
	}

	var cmd tea.Cmd
	if f.focus == fieldNotes {
		f.notes, cmd = f.notes.Update(msg)
		return formNone, cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.focus == fieldPassword {
		f.rateTyped()
	}
	return formNone, cmd
}

func (f *FormModel) View() string {
	var b strings.Builder

	for i, in := range f.inputs {
		b.WriteString(padRight(fieldLabels[i], 9))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]")
		if i == fieldPassword && f.strength != generator.StrengthNone {
			b.WriteString(" ")
			b.WriteString(renderStrength(f.strength))
		}
		b.WriteString("\n")
	}
	b.WriteString(padRight(fieldLabels[fieldNotes], 9))
	b.WriteString("│\n")
	b.WriteString(f.notes.View())
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Generator: length %d │ numbers %s │ symbols %s │ no look-alikes %s",
		f.genOpts.Length, onOff(f.genOpts.Numbers), onOff(f.genOpts.Symbols), onOff(f.genOpts.ExcludeLookAlikes)))

	if f.saving {
		b.WriteString("\n\n[Saving...]")
	}
	renderMessages(&b, "", f.errMsg)

	return b.String()
}

func (f *FormModel) setFocus(i int) tea.Cmd {
	if f.focus == fieldNotes {
		f.notes.Blur()
	} else {
		f.inputs[f.focus].Blur()
	}

	f.focus = (i%fieldCount + fieldCount) % fieldCount
	if f.focus == fieldNotes {
		return f.notes.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *FormModel) generate() {
	password, err := f.gen.Generate(f.genOpts)
	if err != nil {
		f.errMsg = err.Error()
		return
	}
	f.inputs[fieldPassword].SetValue(password)
	f.strength = generator.Rate(password, f.genOpts)
	f.errMsg = ""
}

// rateTyped rates a password the user typed or that came with the record.
func (f *FormModel) rateTyped() {
	password := f.inputs[fieldPassword].Value()
	f.strength = generator.Rate(password, generator.Detect(password))
}

func (f *FormModel) toggleReveal() {
	f.revealed = !f.revealed
	if f.revealed {
		f.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
