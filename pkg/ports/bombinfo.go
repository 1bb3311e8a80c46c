package ports

// BombInfo exposes the bomb properties the engine's snapshot is derived from.
// Implementations are assumed to be always available once a puzzle exists.
type BombInfo interface {
	// ModuleNames lists every module on the bomb, including this one.
	ModuleNames() []string
	BatteryCount() int
	// Ports lists every port by type name; duplicates are separate ports.
	Ports() []string
	OnIndicators() []string
	OffIndicators() []string
	SerialNumber() string
}
