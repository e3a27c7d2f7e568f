package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form parameters such as rule strings.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by an automaton.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current parameters and counters of an automaton.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by automata that describe themselves for a HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// StandardParameters builds the snapshot shared by the life-like automata.
func StandardParameters(a Automaton, density float64) ParameterSnapshot {
	size := a.Size()
	rule := a.Rule()
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Rule",
			Params: []Parameter{
				{Key: "rule", Label: "Rule", Type: ParamTypeString, Value: rule.String()},
				{Key: "birth", Label: "Birth", Type: ParamTypeString, Value: rule.Birth.String(), Description: "neighbor counts that create a live cell"},
				{Key: "survival", Label: "Survival", Type: ParamTypeString, Value: rule.Survival.String(), Description: "neighbor counts that keep a live cell alive"},
			},
		},
		{
			Name: "Grid",
			Params: []Parameter{
				{Key: "rows", Label: "Rows", Type: ParamTypeInt, Value: strconv.Itoa(size.Rows)},
				{Key: "cols", Label: "Cols", Type: ParamTypeInt, Value: strconv.Itoa(size.Cols)},
				{Key: "density", Label: "Density", Type: ParamTypeFloat, Value: strconv.FormatFloat(density, 'f', 2, 64)},
			},
		},
		{
			Name: "Stats",
			Params: []Parameter{
				{Key: "generation", Label: "Generation", Type: ParamTypeInt, Value: strconv.Itoa(a.Generation())},
				{Key: "population", Label: "Population", Type: ParamTypeInt, Value: strconv.Itoa(a.Population())},
			},
		},
	}}
}
