package apierrors

import (
	"errors"

	authProcessor "subgate/internal/auth/processor"
	campaignProcessor "subgate/internal/campaign/processor"
	"subgate/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrAuthDisabled):
		return ServiceUnavailable(CodeAuthDisabled, "Owner API is not enabled on this deployment", err)

	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Token expired. Request a new one with /token")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Authorization token is invalid")

	// Map campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrChannelNotFound):
		return NotFound(CodeChannelNotFound, "Channel not found")

	case errors.Is(err, campaignProcessor.ErrLinkNotFound):
		return NotFound(CodeLinkNotFound, "Link not found")

	case errors.Is(err, campaignProcessor.ErrInvalidURL):
		return BadRequest(CodeInvalidURL, "URL must start with http:// or https://")

	case errors.Is(err, campaignProcessor.ErrEmptyUpdate):
		return BadRequest(CodeInvalidInput, "Nothing to update")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
