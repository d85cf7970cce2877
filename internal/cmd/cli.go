// Package cmd holds the kong command tree for the classichid tool.
package cmd

// CLI is the root of the command tree. The log settings and the config
// file flag apply to every command.
type CLI struct {
	Log struct {
		Level string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"CLASSICHID_LOG_LEVEL"`
		File  string `help:"Also write logs to this file" env:"CLASSICHID_LOG_FILE"`
	} `embed:"" prefix:"log."`

	ConfigFile string `name:"config" help:"Path to a configuration file" env:"CLASSICHID_CONFIG"`

	Simon    Simon         `cmd:"" help:"Play Simon Says on the controller"`
	CatMouse CatMouse      `cmd:"" name:"catmouse" help:"Play cat and mouse on the controller"`
	Monitor  Monitor       `cmd:"" help:"Log decoded controller input states"`
	Reset    Reset         `cmd:"" help:"Reset the controller LEDs"`
	Config   ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
