package reactions

import "github.com/emojiboard/client/pkg/structs"

// Reconcile merges the authoritative server reaction state for a post into
// the local optimistic state and returns the new local state. Both inputs
// are normalized before merging.
//
// The rules guard two specific races, nothing more general:
//
//   - wasRemoval: the local toggle removed the acting user. The server
//     response is ignored outright, because a slow response carrying
//     another client's addition would otherwise resurrect the reaction
//     the user just removed.
//   - addition: per emoji, the server record replaces the local one only
//     when its user count is strictly greater, or when the emoji is not
//     present locally. A stale response can therefore never shrink a
//     record that a concurrent addition already grew.
//
// Two additions of the same user from two sessions remain unguarded.
func Reconcile(local, server []structs.ReactionRecord, wasRemoval bool) []structs.ReactionRecord {
	local = Normalize(local)
	if wasRemoval {
		return local
	}
	server = Normalize(server)

	out := make([]structs.ReactionRecord, len(local))
	copy(out, local)

	for _, sr := range server {
		idx := -1
		for i, lr := range out {
			if lr.Emoji == sr.Emoji {
				idx = i
				break
			}
		}
		if idx == -1 {
			out = append(out, sr)
			continue
		}
		if len(sr.Users) > len(out[idx].Users) {
			out[idx] = sr
		}
	}
	return out
}
