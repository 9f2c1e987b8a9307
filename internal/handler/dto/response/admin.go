package response

type AdminLoginResponse struct {
	Token string `json:"token"`
}
