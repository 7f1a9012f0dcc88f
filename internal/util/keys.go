package util

import "strconv"

// EntryKey returns the storage key for a document's cached rendering.
// The key is exactly (namespace, id); it never encodes render options or
// request identity.
func EntryKey(ns string, id int64) string {
	return "render:" + ns + ":" + strconv.FormatInt(id, 10)
}
