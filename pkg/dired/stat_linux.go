package dired

import "golang.org/x/sys/unix"

// lowerStat widens the platform stat fields into a rawStat. The kind and
// link target are left for the caller to fill in.
func lowerStat(st *unix.Stat_t) rawStat {
	return rawStat{
		nlink: uint64(st.Nlink),
		uid:   st.Uid,
		gid:   st.Gid,
		atime: timespec{int64(st.Atim.Sec), int64(st.Atim.Nsec)},
		mtime: timespec{int64(st.Mtim.Sec), int64(st.Mtim.Nsec)},
		ctime: timespec{int64(st.Ctim.Sec), int64(st.Ctim.Nsec)},
		size:  uint64(st.Size),
		inode: st.Ino,
		dev:   uint64(st.Dev),
	}
}
