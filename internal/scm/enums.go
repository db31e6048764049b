package scm

import (
	"fmt"
	"slices"
	"strings"
)

// StrategyEnum selects how an existing subversion workspace is brought up to
// date. The zero value is the plain update strategy.
type StrategyEnum int

const (
	StrategyUpdate StrategyEnum = iota
	StrategyCheckout
	StrategyUpdateWithClean
	StrategyUpdateWithRevert

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// String returns the configuration-file spelling of the strategy.
func (s StrategyEnum) String() string {
	switch s {
	case StrategyUpdate:
		return "update"
	case StrategyCheckout:
		return "checkout"
	case StrategyUpdateWithClean:
		return "update-with-clean"
	case StrategyUpdateWithRevert:
		return "update-with-revert"
	default:
		return "unknown"
	}
}

// IsValid returns true if the strategy is a recognized value.
func (s StrategyEnum) IsValid() bool {
	return s >= StrategyUpdate && int(s) < StrategyTotal
}

// UpdaterClass returns the workspace updater implementation the consuming
// system associates with the strategy.
func (s StrategyEnum) UpdaterClass() string {
	switch s {
	case StrategyCheckout:
		return "hudson.scm.subversion.CheckoutUpdater"
	case StrategyUpdateWithClean:
		return "hudson.scm.subversion.UpdateWithCleanUpdater"
	case StrategyUpdateWithRevert:
		return "hudson.scm.subversion.UpdateWithRevertUpdater"
	default:
		return "hudson.scm.subversion.UpdateUpdater"
	}
}

// ParseStrategy maps an externally supplied strategy string to its enum.
func ParseStrategy(raw string) (StrategyEnum, error) {
	for s := StrategyUpdate; s.IsValid(); s++ {
		if raw == s.String() {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown checkout strategy %q", raw)
}

// CloneWorkspaceCriteria lists the parent-build criteria the clone-workspace
// integration accepts.
var CloneWorkspaceCriteria = []string{"Any", "Not Failed", "Successful"}

// DefaultCriteria is the criteria applied when a descriptor leaves it unset.
const DefaultCriteria = "Any"

// ValidCriteria reports whether the given criteria is in the allowed set.
func ValidCriteria(criteria string) bool {
	return slices.Contains(CloneWorkspaceCriteria, criteria)
}

func criteriaList() string {
	return strings.Join(CloneWorkspaceCriteria, ", ")
}
