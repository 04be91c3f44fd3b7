package dired

import "golang.org/x/sys/unix"

// lowerStat widens the platform stat fields into a rawStat. The kind and
// link target are left for the caller to fill in. Darwin keeps Dev in a
// signed 32-bit field, so it goes through uint32 to avoid sign extension.
func lowerStat(st *unix.Stat_t) rawStat {
	return rawStat{
		nlink: uint64(st.Nlink),
		uid:   st.Uid,
		gid:   st.Gid,
		atime: timespec{st.Atim.Sec, st.Atim.Nsec},
		mtime: timespec{st.Mtim.Sec, st.Mtim.Nsec},
		ctime: timespec{st.Ctim.Sec, st.Ctim.Nsec},
		size:  uint64(st.Size),
		inode: st.Ino,
		dev:   uint64(uint32(st.Dev)),
	}
}
