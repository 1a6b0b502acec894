package model

import "strings"

// Config is an on/off switch parsed from command line values such as "on", "OFF" or "1".
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

// NewConfig parses s, reporting false when s is not a known switch value.
func NewConfig(s string) (Config, bool) {
	c, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
