package sand

import (
	"strconv"

	"sandbox/internal/core"
)

// Parameters publishes the tunables and live brush state for front ends.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				textParam("fill", "Fill", string(w.cfg.Fill)),
				int64Param("tick", "Tick", int64(w.tick)),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", float64(w.cfg.Gravity)),
				floatParam("max_velocity", "Max velocity", float64(w.cfg.MaxVelocity)),
				boolParam("alternate", "Alternate scan", w.cfg.Alternate),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				floatParam("brush", "Brush radius", w.brush),
				textParam("material", "Material", w.selected.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: float64(w.cfg.MaxVelocity), HasMin: true, HasMax: true},
		{Key: "max_velocity", Label: "Max velocity", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "brush", Label: "Brush radius", Type: core.ParamTypeFloat, Step: 1, Min: w.cfg.BrushMin, Max: w.cfg.BrushMax, HasMin: true, HasMax: true},
		{Key: "alternate", Label: "Alternate scan", Type: core.ParamTypeBool},
	}
}

// SetFloatParameter updates a floating point tunable, clamping to its range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "gravity":
		if value < 0 {
			value = 0
		}
		if value > float64(w.cfg.MaxVelocity) {
			value = float64(w.cfg.MaxVelocity)
		}
		w.cfg.Gravity = float32(value)
	case "max_velocity":
		if value < 1 {
			value = 1
		}
		w.cfg.MaxVelocity = float32(value)
		if w.cfg.Gravity > w.cfg.MaxVelocity {
			w.cfg.Gravity = w.cfg.MaxVelocity
		}
	case "brush":
		w.SetBrushRadius(value)
	default:
		return false
	}
	return true
}

// SetIntParameter forwards integer HUD steps for float-backed tunables.
func (w *World) SetIntParameter(key string, value int) bool {
	return w.SetFloatParameter(key, float64(value))
}

// SetBoolParameter toggles boolean tunables.
func (w *World) SetBoolParameter(key string, value bool) bool {
	if key != "alternate" {
		return false
	}
	w.cfg.Alternate = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
