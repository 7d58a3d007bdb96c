package osfile

import (
	"os"
	"os/user"
	"sync"
)

var lookupUser = func(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

var lookupGroup = func(gid string) (string, error) {
	g, err := user.LookupGroupId(gid)
	if err != nil {
		return "", err
	}
	return g.Name, nil
}

// ownerCache resolves numeric owners to names once per id.
type ownerCache struct {
	mu     sync.Mutex
	users  map[string]string
	groups map[string]string
}

func newOwnerCache() *ownerCache {
	return &ownerCache{
		users:  make(map[string]string),
		groups: make(map[string]string),
	}
}

func (c *ownerCache) lookup(info os.FileInfo) (owner, group string) {
	uid, gid, ok := ownerIDs(info)
	if !ok {
		return "", ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return resolveName(c.users, uid, lookupUser), resolveName(c.groups, gid, lookupGroup)
}

func resolveName(cache map[string]string, id string, lookup func(string) (string, error)) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name, err := lookup(id)
	if err != nil {
		name = id
	}
	cache[id] = name
	return name
}
