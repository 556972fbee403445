package reactions

import (
	"sort"

	"github.com/emojiboard/client/pkg/structs"
)

// Normalize collapses a raw reaction list into one record per emoji. The
// backend's write paths can race and leave duplicate emoji entries; the
// output keeps the first-appearance order of each emoji, unions the user
// ids (as a set), sorts them for stable comparison, and drops records
// whose user set comes out empty. Normalizing an already-normalized list
// returns an equal list.
func Normalize(records []structs.ReactionRecord) []structs.ReactionRecord {
	order := make([]string, 0, len(records))
	sets := make(map[string]map[string]struct{}, len(records))

	for _, r := range records {
		set, ok := sets[r.Emoji]
		if !ok {
			set = make(map[string]struct{})
			sets[r.Emoji] = set
			order = append(order, r.Emoji)
		}
		for _, u := range r.Users {
			set[u] = struct{}{}
		}
	}

	out := make([]structs.ReactionRecord, 0, len(order))
	for _, emoji := range order {
		set := sets[emoji]
		if len(set) == 0 {
			continue
		}
		users := make([]string, 0, len(set))
		for u := range set {
			users = append(users, u)
		}
		sort.Strings(users)
		out = append(out, structs.ReactionRecord{Emoji: emoji, Users: users})
	}
	return out
}

// Has reports whether userId is in the record for emoji. Callers are
// expected to pass a normalized list, but duplicates are tolerated.
func Has(records []structs.ReactionRecord, emoji string, userId string) bool {
	for _, r := range records {
		if r.Emoji != emoji {
			continue
		}
		for _, u := range r.Users {
			if u == userId {
				return true
			}
		}
	}
	return false
}

func count(records []structs.ReactionRecord, emoji string) int {
	for _, r := range records {
		if r.Emoji == emoji {
			return len(r.Users)
		}
	}
	return 0
}
