package request

type VerifyRequest struct {
	Passkey string `json:"passkey"`
}
