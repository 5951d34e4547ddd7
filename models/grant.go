package models

// GrantAuth is the opaque credential for the grant-authenticated provider.
// The upstream authorization API verifies the signature; this service only
// forwards it.
type GrantAuth struct {
	WalletAddress  string `json:"walletAddress"`
	GrantMessage   string `json:"grantMessage"`
	GrantSignature string `json:"grantSignature"`
}
