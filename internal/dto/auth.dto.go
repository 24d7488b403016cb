package dto

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func BearerToken(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}
