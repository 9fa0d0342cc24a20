package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	headerCrumbStyle = lipgloss.NewStyle().
				Foreground(colorSubtext1).
				Background(colorMantle)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(1, 3)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	scrollStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Flashcard
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorFocus).
			Padding(1, 4).
			Align(lipgloss.Center)

	cardBackStyle = cardStyle.BorderForeground(colorInfo)

	termStyle          = lipgloss.NewStyle().Foreground(colorTerm).Bold(true)
	pronunciationStyle = lipgloss.NewStyle().Foreground(colorInfo).Italic(true)
	translationStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	imageStyle         = lipgloss.NewStyle().Foreground(colorSubtext0)

	controlKeyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	controlLabelStyle    = lipgloss.NewStyle().Foreground(colorText)
	controlDisabledStyle = lipgloss.NewStyle().Foreground(colorDisabled).Strikethrough(true)

	// Quiz
	optionStyle        = lipgloss.NewStyle().Foreground(colorText)
	optionCorrectStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	optionWrongStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	feedbackOKStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	feedbackBadStyle   = lipgloss.NewStyle().Foreground(colorWarning)

	// Result
	scoreStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true).
			Padding(1, 6).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorBrand)
)
