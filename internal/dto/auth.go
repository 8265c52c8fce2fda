package dto

type TokenObtainRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,max=254"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type TokenAccessResponse struct {
	Access string `json:"access"`
}
