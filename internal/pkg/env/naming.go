package env

import (
	"fmt"
	"strings"
)

const Prefix = "EXPORTGEN_"

type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// Replace converts flag name to ENV variable name
// for example "typing-package" -> "EXPORTGEN_TYPING_PACKAGE".
func (*NamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(fmt.Errorf("flag name cannot be empty"))
	}

	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func Files() []string {
	// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
	return []string{
		".env.local",
		".env",
	}
}
