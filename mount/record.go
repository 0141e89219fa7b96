package mount

import "github.com/moby/sys/mountinfo"

// Record is one entry of a mount namespace snapshot.
type Record struct {
	// Target is the absolute path where something is mounted.
	Target string
	// Source labels what was mounted: a device, a framework name or a
	// synthetic token such as "tmpfs".
	Source string
	// Type is the filesystem type, e.g. overlay, tmpfs or fuse.
	Type string
	// Root is the path within the source exposed at Target. Bind mounts
	// carry the directory they were taken from here.
	Root string
}

func fromInfo(info *mountinfo.Info) Record {
	return Record{
		Target: info.Mountpoint,
		Source: info.Source,
		Type:   info.FSType,
		Root:   info.Root,
	}
}
