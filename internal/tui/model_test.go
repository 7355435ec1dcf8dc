package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"textanalyzer/internal/domain"
)

type fakeAnalyzer struct {
	gotText     string
	gotFeatures []domain.Feature
	err         error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string, features []domain.Feature) (*domain.AnalysisResult, error) {
	f.gotText = text
	f.gotFeatures = features
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AnalysisResult{
		Requested: features,
		Sentiment: &domain.Outcome[domain.SentimentResult]{Value: domain.SentimentResult{Polarity: 0.5, Label: domain.Positive}},
	}, nil
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestAnalyzeSelectedFeatures(t *testing.T) {
	fa := &fakeAnalyzer{}
	m := sized(New(fa, "I love Go.", []domain.Feature{domain.Sentiment}))
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if fa.gotText != "I love Go." {
		t.Errorf("text = %q", fa.gotText)
	}
	if len(fa.gotFeatures) != 1 || fa.gotFeatures[0] != domain.Sentiment {
		t.Errorf("features = %v", fa.gotFeatures)
	}
	if !strings.Contains(m.View(), "Sentiment: Positive") {
		t.Errorf("view missing result:\n%s", m.View())
	}
}

func TestToggleFeature(t *testing.T) {
	fa := &fakeAnalyzer{}
	m := sized(New(fa, "text.", nil))
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	// cursor starts at WordFrequency; move to Sentiment and toggle it on.
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(fa.gotFeatures) != 1 || fa.gotFeatures[0] != domain.Sentiment {
		t.Errorf("features = %v", fa.gotFeatures)
	}
	if !strings.Contains(m.renderFeatures(), "[x] Sentiment Analysis") {
		t.Errorf("features line = %q", m.renderFeatures())
	}
}

func TestValidationErrorShownInStatus(t *testing.T) {
	fa := &fakeAnalyzer{err: errors.New("validation failed: input text is blank")}
	m := sized(New(fa, "   ", []domain.Feature{domain.Readability}))
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !strings.Contains(m.status, "input text is blank") {
		t.Errorf("status = %q", m.status)
	}
	if m.result != nil {
		t.Error("result should be cleared on error")
	}
}

func TestQuit(t *testing.T) {
	m := sized(New(&fakeAnalyzer{}, "", nil))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
