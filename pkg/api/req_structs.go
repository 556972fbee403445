package api

type RegisterReq struct {
	Username string `json:"username" validate:"required,min=3,max=20,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type toggleFavoriteReq struct {
	Slug string `json:"slug"`
}

type postContentReq struct {
	Content string `json:"content"`
}

type reactReq struct {
	Emoji string `json:"emoji"`
}
