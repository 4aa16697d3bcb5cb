package actions

import (
	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/runtime"
)

// ConfigShowAction prints the effective configuration with secrets masked
func ConfigShowAction(ctx *runtime.Context) error {
	data, err := ctx.Config.YAML()
	if err != nil {
		return err
	}
	ctx.Splog.Page(string(data))
	return nil
}

// ConfigPathAction prints the config file in use, or where one would be read from
func ConfigPathAction(ctx *runtime.Context) string {
	path := ctx.Config.Source
	if path == "" {
		path = config.DefaultPath()
	}
	ctx.Splog.Info("%s", path)
	return path
}
