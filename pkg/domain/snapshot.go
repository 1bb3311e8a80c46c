package domain

// Snapshot holds the bomb-derived counters the rule tables consult.
// It is captured once per puzzle instance and never changes afterwards.
type Snapshot struct {
	ModuleNameContainsRed bool `json:"module_name_contains_red" yaml:"module_name_contains_red" mapstructure:"module_name_contains_red"`
	SimonVariantPresent   bool `json:"simon_variant_present" yaml:"simon_variant_present" mapstructure:"simon_variant_present"`
	BatteryCount          int  `json:"battery_count" yaml:"battery_count" mapstructure:"battery_count"`
	TotalPorts            int  `json:"total_ports" yaml:"total_ports" mapstructure:"total_ports"`
	UniquePortTypes       int  `json:"unique_port_types" yaml:"unique_port_types" mapstructure:"unique_port_types"`
	LitIndicators         int  `json:"lit_indicators" yaml:"lit_indicators" mapstructure:"lit_indicators"`
	UnlitIndicators       int  `json:"unlit_indicators" yaml:"unlit_indicators" mapstructure:"unlit_indicators"`
	SerialDigitSum        int  `json:"serial_digit_sum" yaml:"serial_digit_sum" mapstructure:"serial_digit_sum"`
	ModuleCount           int  `json:"module_count" yaml:"module_count" mapstructure:"module_count"`
}

// IndicatorCount is the total of lit and unlit indicators.
func (s Snapshot) IndicatorCount() int {
	return s.LitIndicators + s.UnlitIndicators
}
