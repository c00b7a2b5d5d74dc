// Package settings defines application-level configuration data.
package settings

import "strings"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up             string `yaml:"up" kong:"help='Up key',default='k'"`
	Down           string `yaml:"down" kong:"help='Down key',default='j'"`
	UpPage         string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage       string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Open           string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back           string `yaml:"back" kong:"help='Back/Cancel key',default='esc'"`
	Quit           string `yaml:"quit" kong:"help='Quit key',default='q'"`
	URL            string `yaml:"url" kong:"help='Focus URL bar key',default='o'"`
	ShowTabs       string `yaml:"show_tabs" kong:"help='Show tab tray key',default='t'"`
	History        string `yaml:"history" kong:"help='Show history key',default='ctrl+r'"`
	ReadingList    string `yaml:"reading_list" kong:"help='Show reading list key',default='L'"`
	Home           string `yaml:"home" kong:"help='Go home key',default='~'"`
	ReaderMode     string `yaml:"reader_mode" kong:"help='Toggle reader mode key',default='R'"`
	ReadStatus     string `yaml:"read_status" kong:"help='Reader bar read status key',default='u'"`
	ReaderSettings string `yaml:"reader_settings" kong:"help='Reader bar display settings key',default='s'"`
	ListStatus     string `yaml:"list_status" kong:"help='Reader bar reading list key',default='b'"`
	AddTab         string `yaml:"add_tab" kong:"help='Add tab key',default='a'"`
	PrivateMode    string `yaml:"private_mode" kong:"help='Toggle private mode key',default='p'"`
	CloseTab       string `yaml:"close_tab" kong:"help='Close tab key',default='x'"`
	OpenExternal   string `yaml:"open_external" kong:"help='Open page in system browser key',default='O'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent  string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted   string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	Private string `yaml:"private" kong:"help='Private mode color',default='99'"`
}

// ReaderConfig defines reader-mode display settings.
type ReaderConfig struct {
	Style string `yaml:"style" kong:"help='Reader style (light/dark/sepia)',default='light'"`
	Width int    `yaml:"width" kong:"help='Reader column width',default='72'"`
}

// Settings represents the application configuration.
type Settings struct {
	HomePage            string       `yaml:"home_page" kong:"help='Page opened on start',default='about:home'"`
	FetchTimeoutSeconds int          `yaml:"fetch_timeout_seconds" kong:"help='Page fetch timeout in seconds',default='10'"`
	KeyMap              KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme               ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Reader              ReaderConfig `yaml:"reader" kong:"embed,prefix='reader.'"`
	DataFile            string       `yaml:"data_file" kong:"help='Database path for history and reading list'"`
}

// ReaderStyles lists the supported reader styles in cycling order.
var ReaderStyles = []string{"light", "dark", "sepia"}

// Reader width bounds.
const (
	MinReaderWidth = 40
	MaxReaderWidth = 120
)

// NextReaderStyle returns the style after current, wrapping around.
func NextReaderStyle(current string, step int) string {
	idx := 0
	for i, s := range ReaderStyles {
		if strings.EqualFold(s, current) {
			idx = i
			break
		}
	}
	n := len(ReaderStyles)
	return ReaderStyles[((idx+step)%n+n)%n]
}

// ClampReaderWidth keeps a reader width inside the supported range.
func ClampReaderWidth(width int) int {
	if width < MinReaderWidth {
		return MinReaderWidth
	}
	if width > MaxReaderWidth {
		return MaxReaderWidth
	}
	return width
}
