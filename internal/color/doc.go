// Package color provides the colour palette and the shared lipgloss styles
// used by the CLI printer and the dashboard.
//
// Colours are adaptive: every entry carries a light and a dark variant and
// lipgloss picks one from the detected terminal background. Initialize forces
// the choice, which keeps rendering stable in tests and when the background
// cannot be queried.
//
// lipgloss degrades the palette to what the terminal supports and emits no
// escape codes at all when output is not a terminal or NO_COLOR is set.
//
// # Semantic Colours
//
//   - Primary: tabs, titles and highlighted selections
//   - Success: passing tests and added diff lines
//   - Error: failing tests and removed diff lines
//   - Warning: release mode and pending confirmations
//   - Info: notifications
//   - Subtle: timestamps, help text and unchanged diff lines
package color
