package revert

import (
	"strings"

	"github.com/samirkut/mntrevert/mount"
)

// StackingCandidates returns, in snapshot order, the targets left behind by
// a stacking framework (KernelSU or APatch style). The module directory is
// never part of the result; StackingRevert detaches it separately.
func StackingCandidates(records []mount.Record, p Profile) []string {
	var modDirSource string
	for _, rec := range records {
		if rec.Target == p.ModuleDir {
			modDirSource = rec.Source
			break
		}
	}

	var targets []string
	for _, rec := range records {
		if rec.Target == p.ModuleDir {
			continue
		}
		if matchStacking(rec, p, modDirSource) {
			targets = append(targets, rec.Target)
		}
	}
	return targets
}

func matchStacking(rec mount.Record, p Profile, modDirSource string) bool {
	// anything mounted under the data root
	if strings.HasPrefix(rec.Target, p.DataRoot) {
		return true
	}
	// framework overlayfs and tmpfs
	if (rec.Type == "overlay" || rec.Type == "tmpfs") && contains(p.StackingSources, rec.Source) {
		return true
	}
	// hook engine fuse
	if rec.Type == "fuse" && rec.Source == p.HookSource {
		return true
	}
	// auxiliary mounts sharing the module dir's backing store
	return modDirSource != "" && rec.Source == modDirSource
}

// StackingRevert detaches every stacking candidate, then the module
// directory itself, exactly once and always last.
func StackingRevert(records []mount.Record, p Profile, d mount.Detacher) {
	for _, target := range StackingCandidates(records, p) {
		d.Detach(target)
	}
	d.Detach(p.ModuleDir)
}
