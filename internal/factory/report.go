package factory

import (
	"errors"

	"github.com/alexiusacademia/gosteel/internal/building"
	"github.com/alexiusacademia/gosteel/internal/engine"
	"github.com/alexiusacademia/gosteel/internal/strategy"
)

// Report is everything known about a freshly built building.
type Report struct {
	Building   *building.Building             `json:"building"`
	Validation building.ValidationResult      `json:"validation"`
	Frame      *strategy.FrameCalculations    `json:"frame,omitempty"`
	Solar      *strategy.OmbriereCalculations `json:"solar,omitempty"`
}

type solarEngine interface {
	SolarMetrics(b *building.Building) (*strategy.OmbriereCalculations, error)
}

// Build creates cfg and reports its validation and calculations. Out of
// range dimensions are reported in Validation and leave Frame and Solar
// empty; they never prevent the building from being generated.
func (r *Registry) Build(cfg building.Config, s strategy.Strategy) (*Report, error) {
	e, cfg, err := r.resolve(cfg, s)
	if err != nil {
		return nil, err
	}
	b, err := engine.Create(e, cfg)
	if err != nil {
		return nil, err
	}

	rep := &Report{Building: b}
	if rep.Validation, err = e.Validate(b); err != nil {
		return nil, err
	}

	rep.Frame, err = e.Calculate(b)
	var dimErr *strategy.InvalidDimensionsError
	switch {
	case errors.As(err, &dimErr):
		rep.Frame = nil
		return rep, nil
	case err != nil:
		return nil, err
	}

	se, isSolar := e.(solarEngine)
	if _, sizes := e.Strategy().(strategy.SolarCalculator); isSolar && sizes {
		if rep.Solar, err = se.SolarMetrics(b); err != nil {
			return nil, err
		}
	}

	r.log.Debug().
		Str("id", b.ID).
		Bool("valid", rep.Validation.IsValid).
		Int("warnings", len(rep.Validation.Warnings)+len(rep.Frame.Warnings)).
		Msg("building report ready")
	return rep, nil
}
