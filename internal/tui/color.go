package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black      = lipgloss.Color("#000000")
	Red        = lipgloss.Color("#FF5353")
	Pink       = lipgloss.Color("205")
	Yellow     = lipgloss.Color("#DBBD70")
	Green      = lipgloss.Color("34")
	LightGreen = lipgloss.Color("86")
	Blue       = lipgloss.Color("63")
	DeepBlue   = lipgloss.Color("39")
	Grey       = lipgloss.Color("#737373")
	LightGrey  = lipgloss.Color("245")
	DarkGrey   = lipgloss.Color("#606362")
	White      = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	LogRecordAttributeKey = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(LightGrey)}

	HelpKey = lipgloss.AdaptiveColor{
		Dark:  "ff",
		Light: "",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Dark:  "248",
		Light: "246",
	}

	SelectedTabColor = lipgloss.AdaptiveColor{
		Dark:  string(White),
		Light: string(Black),
	}
	DefaultTabColor = lipgloss.AdaptiveColor{
		Dark:  string(LightGrey),
		Light: string(Grey),
	}
	IndicatorColor = Pink
	BaselineColor  = lipgloss.AdaptiveColor{
		Dark:  string(DarkGrey),
		Light: "250",
	}
)
