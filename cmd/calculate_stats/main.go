// cmd/calculate_stats/main.go
package main

import (
	"github.com/sanath-2024/stan-x-paper-prep/internal/app"
	"github.com/sanath-2024/stan-x-paper-prep/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
