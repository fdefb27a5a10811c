package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	nextField  key.Binding
	prevField  key.Binding
	quit       key.Binding
	buildInfo  key.Binding
	switchMode key.Binding
	logout     key.Binding
	newItem    key.Binding
	refresh    key.Binding
	search     key.Binding
	sort       key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	yes        key.Binding
	no         key.Binding
	save       key.Binding
	generate   key.Binding
	reveal     key.Binding
	numbers    key.Binding
	symbols    key.Binding
	lookAlike  key.Binding
	longer     key.Binding
	shorter    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	nextField:  key.NewBinding(key.WithKeys("tab", "down")),
	prevField:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("q")),
	buildInfo:  key.NewBinding(key.WithKeys("f1")),
	switchMode: key.NewBinding(key.WithKeys("ctrl+r")),
	logout:     key.NewBinding(key.WithKeys("l")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	search:     key.NewBinding(key.WithKeys("/")),
	sort:       key.NewBinding(key.WithKeys("s")),
	edit:       key.NewBinding(key.WithKeys("e", "enter")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	generate:   key.NewBinding(key.WithKeys("ctrl+g")),
	reveal:     key.NewBinding(key.WithKeys("ctrl+r")),
	numbers:    key.NewBinding(key.WithKeys("alt+n")),
	symbols:    key.NewBinding(key.WithKeys("alt+s")),
	lookAlike:  key.NewBinding(key.WithKeys("alt+x")),
	longer:     key.NewBinding(key.WithKeys("alt+=", "alt++")),
	shorter:    key.NewBinding(key.WithKeys("alt+-")),
}
