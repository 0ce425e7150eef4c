package config

type ctxKey string

const (
	UidKey ctxKey = "uid"
)

const (
	DefaultPage = 1
	DefaultSize = 40
)

const ErrorSpanTag = "error"
