package models

type NFT struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	EthBalance   string `json:"ethBalance"`
	TokenBalance int    `json:"tokenBalance"`
	GameTokens   int    `json:"gameTokens"`
	NFTs         []NFT  `json:"nfts"`
	Avatar       string `json:"avatar"`
}

type TimeCapsule struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	UnlockDate int64  `json:"unlockDate"`
	Creator    string `json:"creator"`
	Category   string `json:"category"`
	IsOpened   bool   `json:"isOpened"`
}

var CapsuleCategories = []string{
	"Personal Goal",
	"Prediction",
	"Message to Future Self",
	"Time Capsule Challenge",
}

type DeployedContract struct {
	ID            string `json:"id"`
	Address       string `json:"address"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DeploymentFee int    `json:"deploymentFee"`
}

type FaucetState struct {
	Balance         int   `json:"balance"`
	LastRequestTime int64 `json:"lastRequestTime"`
}
