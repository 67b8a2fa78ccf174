package notification

import "errors"

var (
	// ErrNotConfigured indicates the email provider API key is missing.
	ErrNotConfigured = errors.New("email service not configured")

	// ErrDeliveryFailed indicates the email could not be rendered or was not accepted by the provider.
	ErrDeliveryFailed = errors.New("failed to send email")
)

// Kind classifies a DeliveryError.
type Kind int

const (
	// KindConfigurationMissing: no provider call was attempted.
	KindConfigurationMissing Kind = iota + 1
	// KindDeliveryFailed: rendering failed, or the provider errored or did not accept the message.
	KindDeliveryFailed
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindDeliveryFailed:
		return "delivery_failed"
	default:
		return "unknown"
	}
}

// DeliveryError is the error returned by Notifier.Send.
// It matches ErrNotConfigured or ErrDeliveryFailed with errors.Is, by Kind,
// and unwraps to the underlying cause.
type DeliveryError struct {
	Err  error
	Kind Kind
}

func (e *DeliveryError) Error() string {
	if e.Kind == KindConfigurationMissing {
		return ErrNotConfigured.Error()
	}
	if e.Err == nil {
		return ErrDeliveryFailed.Error()
	}
	return ErrDeliveryFailed.Error() + ": " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	switch target {
	case ErrNotConfigured:
		return e.Kind == KindConfigurationMissing
	case ErrDeliveryFailed:
		return e.Kind == KindDeliveryFailed
	}
	return false
}
