package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// OrderNumber records the order identifier under the key "order_number".
func OrderNumber(n string) slog.Attr {
	return slog.String("order_number", n)
}

// MessageID records the mail message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	return slog.String("message_id", id)
}

// Transport records the mail transport name under the key "transport".
func Transport(name string) slog.Attr {
	return slog.String("transport", name)
}
