package config

const (
	delimiter = "."

	KeyRetryPrefix       = "retry"
	KeyRetryMaxRetries   = KeyRetryPrefix + delimiter + "max_retries"
	KeyRetryDelaySeconds = KeyRetryPrefix + delimiter + "delay_seconds"

	KeyHistoryPrefix    = "history"
	KeyHistoryMaxLength = KeyHistoryPrefix + delimiter + "max_length"

	KeyValidatePrefix     = "validate"
	KeyValidateUndeclared = KeyValidatePrefix + delimiter + "undeclared"
)
