package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/jump/internal/alias"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunAliasSelect는 "name -> path" 목록에서 별칭 하나를 선택하게 한다.
func (h *HuhFormRunner) RunAliasSelect(entries []alias.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("setup.RunAliasSelect: %w", alias.ErrNoAliases)
	}

	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		options[i] = huh.NewOption(e.Name+" -> "+e.Path, e.Name)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select an alias").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunAliasSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
