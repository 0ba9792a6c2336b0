package main

import (
	"context"
	"log"
	"os"

	"github.com/luethan2025/doc240/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "RISC240 assembly language code commenter"
	app.Description = "RISC240 assembly language code commenter"
	app.Commands = []*cli.Command{
		cmd.AnnotateCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
