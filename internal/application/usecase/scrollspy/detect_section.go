package scrollspy

import (
	"context"

	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type DetectSectionUseCase struct {
	spy    *section.ScrollSpy
	logger logger.Logger
}

func NewDetectSectionUseCase(spy *section.ScrollSpy, log logger.Logger) *DetectSectionUseCase {
	return &DetectSectionUseCase{spy: spy, logger: log}
}

type DetectSectionInput struct {
	ActiveSection string
	Bounds        map[string]section.Rect
}

type DetectSectionOutput struct {
	ActiveSection section.ID
	Changed       bool
}

// Execute runs one scroll event. Bounds keys must be section ids exactly,
// as they appear in the page; any other key is dropped like an anchor that
// is missing from the page.
func (uc *DetectSectionUseCase) Execute(ctx context.Context, input DetectSectionInput) (*DetectSectionOutput, error) {
	current := section.Home
	if input.ActiveSection != "" {
		id, ok := section.Parse(input.ActiveSection)
		if !ok {
			return nil, apperror.NewInvalidInput("unknown active_section '"+input.ActiveSection+"'", nil)
		}
		current = id
	}

	bounds := make(section.BoundsMap, len(input.Bounds))
	for raw, r := range input.Bounds {
		id := section.ID(raw)
		if !id.Valid() {
			uc.logger.Debug("Ignoring bounds for unknown section", zap.String("section", raw))
			continue
		}
		bounds[id] = r
	}

	state := uistate.State{ActiveSection: current}.Scrolled(uc.spy, bounds)
	return &DetectSectionOutput{
		ActiveSection: state.ActiveSection,
		Changed:       state.ActiveSection != current,
	}, nil
}
