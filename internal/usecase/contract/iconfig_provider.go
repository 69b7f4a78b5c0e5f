package usecasecontract

import "time"

type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	GetAllowHeaderAuth() bool
	GetAIServiceAPIKey() string
	GetAIModel() string
}
