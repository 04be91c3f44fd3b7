package dired

import (
	"os/user"
	"strconv"

	"github.com/gaak99/remacs/pkg/lisp"
)

// idField is the resolved uid or gid of one attribute list: either a name
// from the system database or the raw numeric id. fellBack records that a
// name was requested but the lookup came back empty, which lowers to the
// numeric id just like an explicit Numeric request.
type idField struct {
	name     string
	num      uint32
	numeric  bool
	fellBack bool
}

func (f idField) lower() lisp.Value {
	if f.numeric || f.fellBack {
		return lisp.FromNatnum(uint64(f.num))
	}
	return f.name
}

// resolveUser renders a numeric uid per the requested format. It never
// fails: when the passwd lookup comes back empty the numeric id is used
// instead.
func resolveUser(uid uint32, format IdFormat) idField {
	if format == Numeric {
		return idField{num: uid, numeric: true}
	}
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil || u.Username == "" {
		return idField{num: uid, fellBack: true}
	}
	return idField{name: u.Username}
}

// resolveGroup is resolveUser for gids and the group database.
func resolveGroup(gid uint32, format IdFormat) idField {
	if format == Numeric {
		return idField{num: gid, numeric: true}
	}
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil || g.Name == "" {
		return idField{num: gid, fellBack: true}
	}
	return idField{name: g.Name}
}
