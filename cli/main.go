package main

// tokencli 命令行入口
// 调用 tokenservice HTTP 接口并以表格形式输出结果

import (
	"fmt"
	"os"

	"tokenservice/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
