// cmd/kofam-report/main.go
package main

import (
	"kofamscan/internal/app"
	"kofamscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
