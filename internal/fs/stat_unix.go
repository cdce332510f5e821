//go:build !windows && !plan9 && !js && !wasip1

package fs

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// Owner/group lookups hit /etc/passwd (or NSS) per id; directories tend to
// repeat the same handful of ids, so cache resolved names. The session is
// single-threaded, plain maps are fine.
var (
	ownerNames = map[uint32]string{}
	groupNames = map[uint32]string{}
)

func statDetails(info os.FileInfo) (nlink uint64, owner, group string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 1, "", ""
	}
	return uint64(st.Nlink), ownerName(st.Uid), groupName(st.Gid)
}

func ownerName(uid uint32) string {
	if name, ok := ownerNames[uid]; ok {
		return name
	}
	name := ""
	if u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10)); err == nil {
		name = u.Username
	}
	ownerNames[uid] = name
	return name
}

func groupName(gid uint32) string {
	if name, ok := groupNames[gid]; ok {
		return name
	}
	name := ""
	if g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10)); err == nil {
		name = g.Name
	}
	groupNames[gid] = name
	return name
}
