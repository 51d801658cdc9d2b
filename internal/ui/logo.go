package ui

import (
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const fallbackLogo = "🎂 C U M P L E S I T O 🎁"

var (
	logoOnce sync.Once
	logoText string
)

// createLogo generates the home banner with figlet, falling back to plain
// text when figlet is missing. The result is cached for the process.
func createLogo() string {
	logoOnce.Do(func() {
		logoText = fallbackLogo
		cmd := exec.Command("figlet", "-f", "small", "cumplesito")
		output, err := cmd.Output()
		if err == nil && len(strings.TrimSpace(string(output))) > 0 {
			logoText = strings.TrimRight(string(output), "\n")
		}
	})
	return logoText
}

// renderLogo colors the banner, or drops to the plain title when the figlet
// art is wider than the space available.
func (m Model) renderLogo(width int) string {
	styles := m.theme.Styles()
	logo := createLogo()
	if lipgloss.Width(logo) > width {
		logo = fallbackLogo
	}
	lines := strings.Split(logo, "\n")
	for i, line := range lines {
		lines[i] = styles.Logo.Render(line)
	}
	return strings.Join(lines, "\n")
}
