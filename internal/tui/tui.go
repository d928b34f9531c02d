// Package tui holds the interactive terminal prompts of the mirror.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Confirmer shows yes/no prompts in the terminal.
type Confirmer struct {
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption
	logger    *logger.Logger
}

// NewConfirmer returns a Confirmer. Extra program options are passed to
// every prompt, e.g. tea.WithInput for tests.
func NewConfirmer(info models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) *Confirmer {
	return &Confirmer{buildInfo: info, options: opts, logger: log}
}

// Confirm asks question and blocks until the user answers or ctx is done.
func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.options...)

	final, err := tea.NewProgram(newConfirmModel(question, c.buildInfo), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return false, ErrUserQuit
		}
		return false, fmt.Errorf("run prompt: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok || !result.answered {
		return false, ErrUserQuit
	}

	c.logger.Debug().Str("question", question).Bool("confirmed", result.confirmed).Msg("prompt answered")
	return result.confirmed, nil
}
