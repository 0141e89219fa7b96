package revert

// Profile holds the source tokens and reserved paths that identify mounts
// owned by a root-management framework. It is passed by value; the slices
// inside are never modified after DefaultProfile builds them.
type Profile struct {
	// DataRoot is the root-owned data subtree every framework keeps its state in.
	DataRoot string

	// ModuleDir is the staging directory a stacking framework mounts modules at.
	ModuleDir string
	// StackingSources label overlay and tmpfs mounts made by stacking frameworks.
	StackingSources []string
	// HookSource labels the fuse mount of the hook engine.
	HookSource string

	// SkeletonSources label the skeleton framework's internal tmpfs.
	SkeletonSources []string
	// SkeletonModuleRoot prefixes the root of bind mounts sourced from module storage.
	SkeletonModuleRoot string
}

func DefaultProfile() Profile {
	return Profile{
		DataRoot:           "/data/adb",
		ModuleDir:          "/data/adb/modules",
		StackingSources:    []string{"KSU", "APatch"},
		HookSource:         "zygisk",
		SkeletonSources:    []string{"magisk", "worker"},
		SkeletonModuleRoot: "/adb/modules",
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
