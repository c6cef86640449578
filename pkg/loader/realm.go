package loader

import (
	"path"
	"strings"
)

// Realm tells on which side of the runtime a script executes.
type Realm string

const (
	// RealmClient describes scripts executing on connected clients only.
	RealmClient Realm = "client"

	// RealmServer describes scripts executing on the server only.
	RealmServer Realm = "server"

	// RealmShared describes scripts executing on both sides.
	RealmShared Realm = "shared"
)

const (
	clientPrefix = "cl_"
	serverPrefix = "sv_"
	sharedPrefix = "sh_"
)

// RealmOf tells realm of a script from its filename prefix.
// Files without recognized prefix are shared.
func RealmOf(scriptPath string) Realm {
	name := path.Base(scriptPath)

	switch {
	case strings.HasPrefix(name, clientPrefix):
		return RealmClient
	case strings.HasPrefix(name, serverPrefix):
		return RealmServer
	case strings.HasPrefix(name, sharedPrefix):
		return RealmShared
	}

	return RealmShared
}
