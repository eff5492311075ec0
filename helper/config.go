package helper

import (
	"fmt"
	"github.com/spf13/viper"
)

var CfgFile string

// CurrentConfig reads a key scoped to the currently selected remote
// platform, e.g. CurrentConfig("token") resolves "<remote>.token".
func CurrentConfig(key string) string {
	remote := viper.GetString("remote")
	output := viper.GetString(fmt.Sprintf("%s.%s", remote, key))
	return output
}
