package proxy

// TierSet records which quality tiers must actually be transcoded.
type TierSet struct {
	Preview  bool
	Workflow bool
}

// Contains reports whether the set includes the given tier.
func (s TierSet) Contains(t Tier) bool {
	if t == TierWorkflow {
		return s.Workflow
	}
	return s.Preview
}

// Empty reports whether no tier is required.
func (s TierSet) Empty() bool {
	return !s.Preview && !s.Workflow
}

// NeededTiers computes the minimal set of tiers that satisfies both
// outputs. A tier is required when any enabled output sources it; when
// both outputs source the same tier exactly one encode covers them.
func NeededTiers(preview, workflow OutputSpec) TierSet {
	var set TierSet
	for _, out := range []OutputSpec{preview, workflow} {
		if !out.Enabled {
			continue
		}
		if out.Source == TierWorkflow {
			set.Workflow = true
		} else {
			set.Preview = true
		}
	}
	return set
}
