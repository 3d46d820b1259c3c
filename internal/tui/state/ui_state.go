package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode       Mode = iota // Default navigation mode
	SearchMode                   // Typing a catalog search or a detail filter (/)
	ExportPickerMode             // Choosing an export format and window
	HelpMode                     // Displaying help screen
)

// Screen is the view currently shown
type Screen int

const (
	CatalogScreen Screen = iota
	DetailScreen
)

// UIState manages the user interface state.
// This includes terminal dimensions, the current screen and the interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode
	screen Screen
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:   NormalMode,
		screen: CatalogScreen,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the number of table rows that fit on screen.
// This is terminal height minus header, table chrome and status bar, with a minimum of 3.
func (s *UIState) ContentHeight() int {
	const headerHeight = 3    // title + info line + gap
	const tableChrome = 4     // borders + header row + separator
	const statusBarHeight = 2 // gap + status bar
	return max(s.height-headerHeight-tableChrome-statusBarHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Screen returns the screen being shown.
func (s *UIState) Screen() Screen {
	return s.screen
}

// SetScreen switches screens and resets the mode.
func (s *UIState) SetScreen(screen Screen) {
	s.screen = screen
	s.mode = NormalMode
}
