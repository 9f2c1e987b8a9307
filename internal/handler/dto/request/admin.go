package request

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForceReleaseRequest struct {
	Reason string `json:"reason" binding:"required"`
}
