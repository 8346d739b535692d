package webhook

import "errors"

var ErrNotConfigured = errors.New("webhook url not configured")
