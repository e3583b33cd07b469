package juliafatou

import "fmt"

// ConfigError reports invalid configuration reaching the renderer: bad
// gradient control colors, out-of-range channel values, or impossible
// viewport parameters. It always surfaces before any pixel is computed.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "juliafatou: " + e.msg
}

// configErrorf builds a ConfigError with a formatted message.
func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
