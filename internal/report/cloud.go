package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textanalyzer/internal/domain"
)

var (
	cloudLarge  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cloudMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	cloudSmall  = lipgloss.NewStyle().Faint(true)
)

// TextCloud renders a word cloud for terminals: the most frequent words,
// emphasised by frequency tier and wrapped to Width columns.
type TextCloud struct {
	MaxWords int
	Width    int
}

// RenderCloud implements domain.CloudRenderer. counts must be ordered by
// descending count.
func (c TextCloud) RenderCloud(counts []domain.WordCount) (string, error) {
	if len(counts) == 0 {
		return "", nil
	}
	if c.MaxWords > 0 && len(counts) > c.MaxWords {
		counts = counts[:c.MaxWords]
	}
	top := float64(counts[0].Count)
	words := make([]string, len(counts))
	for i, wc := range counts {
		ratio := float64(wc.Count) / top
		switch {
		case ratio >= 0.66:
			words[i] = cloudLarge.Render(strings.ToUpper(wc.Word))
		case ratio >= 0.33:
			words[i] = cloudMedium.Render(wc.Word)
		default:
			words[i] = cloudSmall.Render(wc.Word)
		}
	}
	line := strings.Join(words, "  ")
	if c.Width > 0 {
		return lipgloss.NewStyle().Width(c.Width).Render(line), nil
	}
	return line, nil
}
