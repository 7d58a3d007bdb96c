//go:build !unix

package osfile

import "os"

func ownerIDs(os.FileInfo) (uid, gid string, ok bool) {
	return "", "", false
}
