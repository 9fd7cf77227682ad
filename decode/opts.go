package decode

import "github.com/cowwoc/lumina/format"

type config struct {
	format format.Format
}

type Option func(*config)

func WithFormat(f format.Format) Option {
	return func(cfg *config) { cfg.format = f }
}

func JSON() Option {
	return WithFormat(format.JSONFormat)
}

func YAML() Option {
	return WithFormat(format.YAMLFormat)
}
