package sampler

import "github.com/katalvlaran/randmst/dsu"

// fatComponent caches the giant component once one exists: its current root,
// its size, and the list of vertices outside it. The remainder list may hold
// stale entries — vertices whose component has since merged into the fat one
// — because evicting eagerly on every merge would cost O(size); stale
// entries are skipped at sampling time and swept out lazily by compact.
type fatComponent struct {
	root      dsu.Point
	size      uint32
	remainder []dsu.Point
}

// findFat scans all Points for a component holding at least half of them.
// Called only past the saturation threshold, where such a component is
// unique if it exists; returns nil when the scan comes up empty (the caller
// simply retries on a later step). Two passes: one to locate the component,
// one to collect the remainder.
//
// Complexity: O(n α(n)); runs at most a handful of times per trial.
func (s *Sampler) findFat() *fatComponent {
	n := s.set.Len()
	for v := dsu.Point(0); v < dsu.Point(n); v++ {
		root, size := s.set.RootSize(v)
		if uint64(size)*2 < uint64(n) {
			continue
		}

		fat := &fatComponent{root: root, size: size}
		for w := dsu.Point(0); w < dsu.Point(n); w++ {
			if s.set.Root(w) != root {
				fat.remainder = append(fat.remainder, w)
			}
		}

		return fat
	}

	return nil
}

// refreshFat re-resolves the tracked root and size after an accepted edge —
// the root may have been relinked by the union — and compacts the remainder
// list once stale entries outnumber live ones. The compaction trigger
// (n − size)×compactionFactor < len(remainder) amortizes the O(len) filter
// against the shrinkage of the true remainder set.
func (s *Sampler) refreshFat() {
	fat := s.fat
	fat.root, fat.size = s.set.RootSize(fat.root)

	live := uint64(s.set.Len() - fat.size)
	if live*compactionFactor >= uint64(len(fat.remainder)) {
		return
	}

	// Filter in place: keep only vertices still outside the fat component.
	kept := fat.remainder[:0]
	for _, p := range fat.remainder {
		if s.set.Root(p) != fat.root {
			kept = append(kept, p)
		}
	}
	fat.remainder = kept
}
