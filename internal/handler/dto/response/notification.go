package response

type BadgeResponse struct {
	Unread int `json:"unread"`
}
