package model

// Screen is one screen configuration: a title plus the menu and info boxes
// shown side by side. Map keys only decide the display order.
type Screen struct {
	Title string
	Menus map[string]Menu
	Infos map[string]Info
}

type Menu struct {
	Title    string
	Base     int
	Commands []Command
}

// Command is a selectable menu line. Line is run as a subprocess after
// being split into program and arguments.
type Command struct {
	Name string
	Line string
}

type Info struct {
	Title string
	Width int
	Text  []string
}

// MenuEntry is a command with the index it was assigned on screen.
type MenuEntry struct {
	Index   int
	Name    string
	Command string
}

type Style struct {
	VMargin  int
	HMargin  int
	HPadding int
}

// Settings is the content of the main configuration file.
type Settings struct {
	// Profiles maps host name -> user name -> screen configuration path.
	// "*" matches any host or user.
	Profiles map[string]map[string]string
	Style    Style
	ExitKey  string
}

const Wildcard = "*"

func DefaultStyle() Style {
	return Style{VMargin: 0, HMargin: 0, HPadding: 3}
}

const DefaultExitKey = "0"
