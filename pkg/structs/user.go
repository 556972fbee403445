package structs

import (
	"bytes"
	"encoding/json"
)

type User struct {
	Id       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// UserRef is the author reference attached to a post. The backend sends it
// either as a bare user id string or as an embedded profile object; both
// forms are resolved here, at decode time, so nothing downstream has to
// care which one arrived.
type UserRef struct {
	Id       string
	Username string
}

func (r UserRef) IsZero() bool {
	return r.Id == ""
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{Id: id}
		return nil
	}

	var profile struct {
		Id       string `json:"_id"`
		AltId    string `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		// Tolerated: an unrecognized shape reads as an anonymous author.
		*r = UserRef{}
		return nil
	}
	id := profile.Id
	if id == "" {
		id = profile.AltId
	}
	*r = UserRef{Id: id, Username: profile.Username}
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.Username == "" {
		return json.Marshal(r.Id)
	}
	return json.Marshal(struct {
		Id       string `json:"_id"`
		Username string `json:"username"`
	}{r.Id, r.Username})
}
