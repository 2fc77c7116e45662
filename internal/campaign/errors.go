package campaign

import "errors"

var (
	ErrCampaignIDRequired = errors.New("campaign: campaign id required")
	ErrNameRequired       = errors.New("campaign: name is required")
	ErrSlugInvalid        = errors.New("campaign: could not derive slug from name")
	ErrProviderNotConfigured = errors.New("campaign: ai provider not configured")
	ErrTypeRequired          = errors.New("campaign: content type is required")
)
