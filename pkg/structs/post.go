package structs

type Post struct {
	Id        string           `json:"_id"`
	Content   string           `json:"content"`
	CreatedBy UserRef          `json:"createdBy"`
	Reactions []ReactionRecord `json:"reactions,omitempty"`
}

// OwnedBy reports whether userId authored the post. Edit and delete
// controls are offered only to the owner.
func (p Post) OwnedBy(userId string) bool {
	return userId != "" && p.CreatedBy.Id == userId
}

type ReactionRecord struct {
	Emoji string   `json:"emoji"`
	Users []string `json:"users"`
}
