package config

// GeneralConfig holds the tunables Pulse needs that are not part of the
// optimization problems themselves: the fairness exponent, the preference
// value handed to the selectors, and the population/generation sizing
// passed to the (externally supplied) evolutionary engine.
type GeneralConfig struct {
	Name string `yaml:"name"`

	// FairnessExponent is p in the local assignment problem's Lp-norm
	// fairness objective. Must be >= 1.
	FairnessExponent float64 `yaml:"fairness_exponent"`

	// SelectorPreference in [0,1] is handed to PreferenceSelector.
	SelectorPreference float64 `yaml:"selector_preference"`

	// PopulationSize and Generations size the population the evolutionary
	// engine is asked to evolve; Pulse only uses PopulationSize to size the
	// replica-aware initializer's output.
	PopulationSize int `yaml:"population_size"`
	Generations    int `yaml:"generations"`

	ConnectorKind string `yaml:"connector"`

	// ServicesFile is a path to a JSON file holding the []model.Service
	// list to place (§6's wire format). Read by main for every connector
	// kind, since the connectors supply resources but not service
	// definitions.
	ServicesFile string `yaml:"services_file"`
}

var PulseGeneralConfig GeneralConfig

const MB = 1e6
