package config

import "os"

func IsDebug() bool {
	return os.Getenv("ADVOGADO_DEBUG") == "1"
}
