package revert

import (
	"strings"

	"github.com/samirkut/mntrevert/mount"
)

// SkeletonCandidates returns, in discovery order, the targets left behind
// by a skeleton framework (Magisk style): its internal tmpfs, bind mounts
// taken from module storage, and anything under the data root. Mirror nodes
// live under the skeleton and go away with it.
func SkeletonCandidates(records []mount.Record, p Profile) []string {
	var targets []string
	for _, rec := range records {
		if contains(p.SkeletonSources, rec.Source) ||
			strings.HasPrefix(rec.Root, p.SkeletonModuleRoot) ||
			strings.HasPrefix(rec.Target, p.DataRoot) {
			targets = append(targets, rec.Target)
		}
	}
	return targets
}

// SkeletonRevert detaches the skeleton candidates last discovered first.
// Later mounts sit on top of or inside earlier ones, so this order must be kept.
func SkeletonRevert(records []mount.Record, p Profile, d mount.Detacher) {
	targets := SkeletonCandidates(records, p)
	for i := len(targets) - 1; i >= 0; i-- {
		d.Detach(targets[i])
	}
}
