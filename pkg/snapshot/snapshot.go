// Package snapshot derives the engine's immutable counters from the bomb.
package snapshot

import (
	"strings"
	"unicode"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/ports"
)

// Module names that set SimonVariantPresent, which Yellow rule 3 consults.
var simonVariants = map[string]struct{}{
	"Simon Shouts": {},
	"Simon Sends":  {},
}

// Capture reads the bomb once and returns the snapshot used for every stage
// of a puzzle.
func Capture(bomb ports.BombInfo) domain.Snapshot {
	modules := bomb.ModuleNames()
	portList := bomb.Ports()

	return domain.Snapshot{
		ModuleNameContainsRed: anyContainsRed(modules),
		SimonVariantPresent:   hasSimonVariant(modules),
		BatteryCount:          bomb.BatteryCount(),
		TotalPorts:            len(portList),
		UniquePortTypes:       countUnique(portList),
		LitIndicators:         len(bomb.OnIndicators()),
		UnlitIndicators:       len(bomb.OffIndicators()),
		SerialDigitSum:        DigitSum(bomb.SerialNumber()),
		ModuleCount:           len(modules),
	}
}

// DigitSum adds up the decimal digits of a serial number, ignoring letters.
func DigitSum(serial string) int {
	sum := 0
	for _, r := range serial {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

func anyContainsRed(names []string) bool {
	for _, n := range names {
		if strings.Contains(strings.Map(unicode.ToLower, n), "red") {
			return true
		}
	}
	return false
}

func hasSimonVariant(names []string) bool {
	for _, n := range names {
		if _, ok := simonVariants[n]; ok {
			return true
		}
	}
	return false
}

func countUnique(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return len(seen)
}
