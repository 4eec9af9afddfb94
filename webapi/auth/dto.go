package auth

import (
	"bytes"
	"encoding/json"
)

// Secret is a password accepted as either a JSON string or a JSON number.
type Secret string

func (s *Secret) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Secret(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Secret(n.String())
	return nil
}

// LoginInput represents the request body for the placeholder login.
type LoginInput struct {
	User     string `json:"user" validate:"required"`
	Password Secret `json:"password" validate:"required" swaggertype:"string"`
}

// LoginResponse carries the session token and the identifier it was issued for.
type LoginResponse struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
	ID    string `json:"id"`
}

// LogoutResponse mirrors LoginResponse with the session cleared.
type LogoutResponse struct {
	Auth  bool    `json:"auth"`
	Token *string `json:"token"`
}
