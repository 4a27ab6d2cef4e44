package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/alexrfelicio/glfw/internal/cmd"
	"github.com/alexrfelicio/glfw/internal/config"
	"github.com/alexrfelicio/glfw/internal/log"
)

type CLI struct {
	Config   string          `help:"Config file (.json, .yaml, .yml or .toml)" env:"GLFWINPUT_CONFIG"`
	Log      config.Log      `embed:"" prefix:"log."`
	Input    config.Input    `embed:"" prefix:"input."`
	Platform config.Platform `embed:"" prefix:"platform."`

	Replay cmd.Replay `cmd:"" help:"Play an input script into a window and print its final state"`
	Live   cmd.Live   `cmd:"" help:"Drive a window from terminal keyboard and mouse input"`
}

func main() {
	userCfg := config.FindUserConfig(os.Args[1:])

	var cli CLI
	opts := append([]kong.Option{
		kong.Name("glfwinput"),
		kong.Description("Per-window keyboard, mouse and wheel input state"),
		kong.UsageOnError(),
	}, config.Options(userCfg)...)
	ctx := kong.Parse(&cli, opts...)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger, &cli.Input, &cli.Platform)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
